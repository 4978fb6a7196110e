package cmd

import (
	"github.com/slst/slst-backend/models"
	"github.com/slst/slst-backend/utils"
)

type ServerConfig struct {
	env                string
	port               string
	loggingFormat      string
	pgConnectionString string
	maxBatchSize       int

	thresholds models.MatchThresholds

	refreshListsOnStart bool
}

func (config ServerConfig) MatchThresholds() models.MatchThresholds {
	return config.thresholds
}

func (config ServerConfig) Validate() error {
	return config.thresholds.Validate()
}

// matchThresholdsFromEnv reads the matching policy cutoffs, falling back to
// the compliance defaults for anything unset.
func matchThresholdsFromEnv() models.MatchThresholds {
	defaults := models.DefaultMatchThresholds()
	return models.MatchThresholds{
		High:          utils.GetEnv("MATCH_THRESHOLD_HIGH", defaults.High),
		Medium:        utils.GetEnv("MATCH_THRESHOLD_MEDIUM", defaults.Medium),
		Low:           utils.GetEnv("MATCH_THRESHOLD_LOW", defaults.Low),
		MinNameLength: utils.GetEnv("MIN_NAME_LENGTH", defaults.MinNameLength),
	}
}
