package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordexplorer/internal/cli"
	"codeberg.org/snonux/wordexplorer/internal/logging"
	"codeberg.org/snonux/wordexplorer/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
		logging.NewLogger(viper.GetString("log.level"), viper.GetString("log.format"))
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, args []string, flags *cli.Flags) error {
	proc, err := processor.NewProcessor(ctx, flags)
	if err != nil {
		return err
	}

	switch {
	case flags.ListModels:
		return proc.ListModels(ctx)
	case flags.BatchFile != "":
		return proc.ProcessBatch(ctx)
	case flags.Sentence != "":
		return proc.TransformSentence(ctx, flags.Sentence)
	case len(args) > 0:
		return proc.ProcessSingleWord(ctx, args[0])
	default:
		// No input provided - start the web interface by default
		return proc.RunServer(ctx)
	}
}
