package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repodiac/espeak-ng-german-loan-words/internal/archive"
	"github.com/repodiac/espeak-ng-german-loan-words/internal/cli"
	"github.com/repodiac/espeak-ng-german-loan-words/internal/processor"
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
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag
	if flags.Archive {
		if flags.OutputDir == "" {
			return fmt.Errorf("--archive requires -o/--output")
		}
		if err := archive.ArchiveOutputs(flags.OutputDir); err != nil {
			return fmt.Errorf("failed to archive outputs: %w", err)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("missing <wiktionary-xml> argument")
	}
	flags.InputFile = args[0]

	if flags.OutputDir == "" {
		return fmt.Errorf("missing required -o/--output directory")
	}

	// Create processor
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	if err := proc.Run(); err != nil {
		return err
	}

	fmt.Printf("\nDone! Dictionary written to: %s\n", flags.OutputDir)
	return nil
}
