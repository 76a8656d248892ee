// Package cmd defines the command-line interface for gitvalue.
package cmd

import (
	"strings"

	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envKeyReplacer maps flag-style keys to env-style keys
// (e.g. sort-by -> GITVALUE_SORT_BY).
var envKeyReplacer = strings.NewReplacer("-", "_")

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(contributorsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("months", "m", contract.DefaultMonths, "Number of months to analyze (0 analyzes the entire history)")
	rootCmd.PersistentFlags().StringP("sort-by", "s", "value", "Sort results by metric: value or quality or difficulty or commits")
	rootCmd.PersistentFlags().StringP("format", "f", "table", "Report format: table or detailed")
	rootCmd.PersistentFlags().String("output", "text", "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Bool("semantic", false, "Use the model-backed impact analyzer (falls back to heuristics)")
	rootCmd.PersistentFlags().String("openai-api-key", "", "API key for the semantic analyzer (prefer GITVALUE_OPENAI_API_KEY)")
	rootCmd.PersistentFlags().String("openai-base-url", "", "Override the OpenAI-compatible endpoint base URL")
	rootCmd.PersistentFlags().String("openai-model", "", "Model name for the semantic analyzer")
	rootCmd.PersistentFlags().String("history-backend", "none", "Run tracking backend: none or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql run tracking")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
