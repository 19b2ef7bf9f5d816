package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/miralushch/ipa2ru/internal/archive"
	"github.com/miralushch/ipa2ru/internal/cli"
	"github.com/miralushch/ipa2ru/internal/models"
	"github.com/miralushch/ipa2ru/internal/processor"
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
		dir := flags.OutputDir
		if dir == "" {
			home, _ := os.UserHomeDir()
			dir = filepath.Join(home, ".local", "state", "ipa2ru", "conversions")
		}
		if err := archive.ArchiveConversions(dir); err != nil {
			return fmt.Errorf("failed to archive conversions: %w", err)
		}
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	// Create processor
	proc := processor.NewProcessor(flags)
	defer proc.Close()

	// Handle --history flag
	if flags.ShowHistory {
		return proc.ShowHistory()
	}

	if flags.Word != "" {
		// Fetch the transcription first, then convert
		return proc.ProcessWord(flags.Word)
	}

	if flags.BatchFile != "" {
		// Process batch file
		return proc.ProcessBatch()
	}

	if len(args) > 0 {
		// Convert a single IPA string
		return proc.ProcessSingleInput(args[0])
	}

	// No input provided - launch GUI mode by default
	return proc.RunGUIMode()
}
