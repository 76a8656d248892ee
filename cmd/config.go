package cmd

import (
	"fmt"

	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// effectiveConfig is the YAML view of the resolved configuration.
// Secrets are redacted before printing.
type effectiveConfig struct {
	Months         int    `yaml:"months"`
	SortBy         string `yaml:"sort-by"`
	Format         string `yaml:"format"`
	Output         string `yaml:"output"`
	OutputFile     string `yaml:"output-file"`
	Limit          int    `yaml:"limit"`
	Semantic       bool   `yaml:"semantic"`
	OpenAIKey      string `yaml:"openai-api-key"`
	OpenAIBaseURL  string `yaml:"openai-base-url"`
	OpenAIModel    string `yaml:"openai-model"`
	HistoryBackend string `yaml:"history-backend"`
	HistoryConnect string `yaml:"history-db-connect"`
	Color          string `yaml:"color"`
	Width          int    `yaml:"width"`
}

// configCmd shows the resolved configuration from all sources.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Display the resolved configuration after merging all sources.

Precedence (highest first):
1. Command-line flags
2. Environment variables (GITVALUE_ prefix)
3. Config file (.gitvalue.yaml in the working directory or $HOME)
4. Built-in defaults

Sensitive values (API keys, connection strings) are redacted.

Examples:
  # Show the effective configuration
  gitvalue config

  # Show configuration with an explicit config file
  gitvalue config --config ./team.gitvalue.yaml`,
	Run: func(_ *cobra.Command, _ []string) {
		if err := loadConfigFile(); err != nil {
			contract.LogFatal("Cannot load configuration", err)
		}
		if err := viper.Unmarshal(input); err != nil {
			contract.LogFatal("Cannot resolve configuration", err)
		}

		view := effectiveConfig{
			Months:         input.Months,
			SortBy:         input.SortBy,
			Format:         input.Format,
			Output:         input.Output,
			OutputFile:     input.OutputFile,
			Limit:          input.Limit,
			Semantic:       input.Semantic,
			OpenAIKey:      redact(input.OpenAIKey),
			OpenAIBaseURL:  input.OpenAIBaseURL,
			OpenAIModel:    input.OpenAIModel,
			HistoryBackend: input.HistoryBackend,
			HistoryConnect: redact(input.HistoryConnect),
			Color:          input.Color,
			Width:          input.Width,
		}

		out, err := yaml.Marshal(view)
		if err != nil {
			contract.LogFatal("Cannot render configuration", err)
		}
		if file := viper.ConfigFileUsed(); file != "" {
			fmt.Printf("# config file: %s\n", file)
		}
		fmt.Print(string(out))
	},
}

func redact(value string) string {
	if value == "" {
		return ""
	}
	return "<redacted>"
}
