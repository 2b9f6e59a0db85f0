// Package cli implements the fieldlens command tree.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/fieldlens/internal/model"
)

var (
	cfgFile     string
	verbose     bool
	contextPath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fieldlens",
	Short: "Fieldlens - structured construction data from raw field text",
	Long: `Fieldlens turns unstructured construction field text into structured,
reviewable data using transparent keyword and pattern rules.

It generates punch lists from walkthrough notes, action items from
meeting minutes, and daily logs from field reports. It analyzes
schedule delays, routes RFIs to the right trade, and searches project
records by relevance.

Every output is deterministic and explainable. Fieldlens drafts;
people decide.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Fieldlens.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fieldlens v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.fieldlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&contextPath, "context", "", "project context YAML (team, subcontractors, activities, records)")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.fieldlens")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match FIELDLENS_*
	viper.SetEnvPrefix("FIELDLENS")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig assembles the effective configuration: defaults overlaid with
// config-file and FIELDLENS_* values, then flag overrides applied by the
// calling command.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("defaults.trade"); v != "" {
		cfg.Defaults.Trade = v
	}
	if v := viper.GetString("defaults.priority"); v != "" {
		cfg.Defaults.Priority = v
	}
	if v := viper.GetString("defaults.location"); v != "" {
		cfg.Defaults.Location = v
	}
	if v := viper.GetString("defaults.owner"); v != "" {
		cfg.Defaults.Owner = v
	}
	if v := viper.GetInt("segment.punch_min_length"); v > 0 {
		cfg.Segment.PunchMinLength = v
	}
	if v := viper.GetInt("segment.action_min_length"); v > 0 {
		cfg.Segment.ActionMinLength = v
	}
	if v := viper.GetInt("segment.daily_log_min_length"); v > 0 {
		cfg.Segment.DailyLogMinLength = v
	}
	if viper.IsSet("routing.min_score") {
		cfg.Routing.MinScore = viper.GetInt("routing.min_score")
	}
	if v := viper.GetInt("routing.max_similar"); v > 0 {
		cfg.Routing.MaxSimilar = v
	}
	if viper.IsSet("routing.max_search") {
		cfg.Routing.MaxSearch = viper.GetInt("routing.max_search")
	}
	if v := viper.GetInt("concurrency.workers"); v > 0 {
		cfg.Concurrency.Workers = v
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := viper.GetDuration("cache.memory_ttl"); v > 0 {
		cfg.Cache.MemoryTTL = v
	}
	if v := viper.GetDuration("cache.disk_ttl"); v > 0 {
		cfg.Cache.DiskTTL = v
	}

	cfg.Output.Verbose = verbose
	return cfg
}

// parseDate accepts YYYY-MM-DD, defaulting to today when empty
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return d, nil
}
