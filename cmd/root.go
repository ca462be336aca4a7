package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	clientCmd "github.com/greenloop/marketplace/client/cmd"
	"github.com/greenloop/marketplace/internal/constants"
	"github.com/greenloop/marketplace/internal/log"
)

func Start() {
	logger := log.Get(filepath.Join("/var/log", constants.AppMarketplace+".log"), os.Getenv("ENV")).
		With().
		Str(log.KeyAppName, constants.AppMarketplace).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: constants.AppMarketplace}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "client",
		Short: "Run the marketplace client session service",
		Run: func(cmd *cobra.Command, args []string) {
			clientCmd.RunClientService(cmd.Context())
		},
	})
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
