package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/miralushch/ipa2ru/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ipa2ru [ipa-text]",
		Short: "IPA to Russian Cyrillic transliterator",
		Long: `ipa2ru converts phonetic notation (IPA) into Russian Cyrillic text.

It decodes the IPA symbols, reduces them to a small Russian phoneme
inventory and renders context-aware orthography (palatalization spread,
vowel iotation, hard/soft sign placement).

Examples:
  ipa2ru                          # Launch interactive GUI (default)
  ipa2ru "nʲæ"                    # Convert a single IPA string: ня
  ipa2ru --batch words.txt        # Convert multiple IPA strings from file
  ipa2ru --word кошка             # Fetch IPA for a word first, then convert`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Set default output directory to match the --archive target
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "ipa2ru", "conversions")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.ipa2ru.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Save each conversion to a directory under this path")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Convert IPA strings from file (one per line)")
	cmd.Flags().StringVarP(&flags.Word, "word", "w", "", "Fetch the IPA transcription for a word, then convert it")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.ShowHistory, "history", false, "Show recent conversions and exit")
	cmd.Flags().IntVar(&flags.HistoryLimit, "history-limit", flags.HistoryLimit, "Number of history entries to show")
	cmd.Flags().BoolVar(&flags.NoHistory, "no-history", false, "Do not record conversions in the history database")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the saved conversions directory and exit")

	// Transcription provider flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Transcription provider for --word: openai or gemini")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for IPA transcription")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for IPA transcription")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("history.limit", cmd.Flags().Lookup("history-limit"))
	viper.BindPFlag("history.disabled", cmd.Flags().Lookup("no-history"))
	viper.BindPFlag("transcription.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("transcription.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("transcription.gemini_model", cmd.Flags().Lookup("gemini-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".ipa2ru" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ipa2ru")
	}

	// Environment variables
	viper.SetEnvPrefix("IPA2RU")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("transcription.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("transcription.gemini_key")
}
