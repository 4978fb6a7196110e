package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/slst/slst-backend/dto"
	"github.com/slst/slst-backend/utils"
)

// RunScreen loads the sanctions lists, screens one name and prints the
// result as JSON. Used for ad-hoc checks without a running server.
func RunScreen(name string) error {
	serverConfig := ServerConfig{
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		maxBatchSize:  utils.GetEnv("MAX_BATCH_SIZE", 1000),
		thresholds:    matchThresholdsFromEnv(),
	}
	if err := serverConfig.Validate(); err != nil {
		return err
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	// One-shot screenings never persist audit events, so the usecases come
	// up without a database connection.
	serverConfig.pgConnectionString = ""
	uc, err := buildUsecases(ctx, serverConfig)
	if err != nil {
		return err
	}

	if _, err := uc.ListRefresh.RefreshLists(ctx); err != nil {
		return err
	}

	result := uc.Screening.Screen(ctx, name)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dto.AdaptAPIScreeningResult(result))
}
