package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slst/slst-backend/models"
)

func TestMatchThresholdsFromEnvDefaults(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD_HIGH", "")
	t.Setenv("MATCH_THRESHOLD_MEDIUM", "")
	t.Setenv("MATCH_THRESHOLD_LOW", "")
	t.Setenv("MIN_NAME_LENGTH", "")

	thresholds := matchThresholdsFromEnv()

	assert.Equal(t, models.DefaultMatchThresholds(), thresholds)
	require.NoError(t, thresholds.Validate())
}

func TestMatchThresholdsFromEnvOverrides(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD_HIGH", "92.5")
	t.Setenv("MATCH_THRESHOLD_MEDIUM", "")
	t.Setenv("MATCH_THRESHOLD_LOW", "")
	t.Setenv("MIN_NAME_LENGTH", "4")

	thresholds := matchThresholdsFromEnv()

	assert.InDelta(t, 92.5, thresholds.High, 0.001)
	assert.Equal(t, 4, thresholds.MinNameLength)
	require.NoError(t, thresholds.Validate())
}

func TestServerConfigValidateRejectsInvertedThresholds(t *testing.T) {
	config := ServerConfig{
		thresholds: models.MatchThresholds{High: 60, Medium: 70, Low: 85, MinNameLength: 3},
	}

	assert.Error(t, config.Validate())
}
