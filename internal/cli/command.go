package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/repodiac/espeak-ng-german-loan-words/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loanwords [wiktionary-xml]",
		Short: "espeak-ng German Loanword Dictionary Generator",
		Long: `loanwords extracts German loanword entries from a Wiktionary XML dump,
converts their IPA transcriptions into espeak-ng phonemic encodings and
writes a dictionary import file plus a tabular issue report.

The dump may be plain XML or bzip2-compressed (*.xml.bz2).

Examples:
  loanwords -o out dewiktionary-latest-pages-articles.xml
  loanwords -o out --compile dewiktionary-latest-pages-articles.xml.bz2
  loanwords --archive -o out  # move previous output aside`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.loanwords.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Output directory for the dictionary and report files (required)")
	cmd.Flags().StringVar(&flags.DictName, "dict-name", flags.DictName, "File name of the espeak-ng import file")
	cmd.Flags().StringVar(&flags.ReportName, "report-name", flags.ReportName, "File name of the issue report")
	cmd.Flags().StringVar(&flags.CorrectionsFile, "ipa-corrections", "", "File with additional IPA corrections (one 'from = to' pair per line)")
	cmd.Flags().BoolVar(&flags.Compile, "compile", false, "Run espeak-ng --compile on the generated dictionary")
	cmd.Flags().StringVar(&flags.ESpeakBinary, "espeak-binary", flags.ESpeakBinary, "Name or path of the espeak-ng executable")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive a previous output directory instead of processing a dump")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress progress output")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.dict_name", cmd.Flags().Lookup("dict-name"))
	viper.BindPFlag("output.report_name", cmd.Flags().Lookup("report-name"))
	viper.BindPFlag("phoneme.corrections", cmd.Flags().Lookup("ipa-corrections"))
	viper.BindPFlag("espeak.compile", cmd.Flags().Lookup("compile"))
	viper.BindPFlag("espeak.binary", cmd.Flags().Lookup("espeak-binary"))
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

		// Search config in home directory with name ".loanwords" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".loanwords")
	}

	// Environment variables
	viper.SetEnvPrefix("LOANWORDS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
