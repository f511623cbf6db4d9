package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jerrypanguo/Deutsch-Learning/internal"
	"github.com/jerrypanguo/Deutsch-Learning/internal/cli"
	"github.com/jerrypanguo/Deutsch-Learning/internal/logging"
	"github.com/jerrypanguo/Deutsch-Learning/internal/models"
	"github.com/jerrypanguo/Deutsch-Learning/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels(cmd.Context(), cmd.OutOrStdout())
	}

	logger, closer, err := logging.New(logging.Config{
		File:      viper.GetString("log.file"),
		Level:     viper.GetString("log.level"),
		MaxSizeMB: viper.GetInt("log.max_size_mb"),
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()

	logger.Info().Str("version", internal.Version).Msg("starting")

	proc := processor.NewProcessor(logger)
	if err := proc.RunInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		logger.Error().Err(err).Msg("session failed")
		return err
	}
	return nil
}
