// Copyright Venturely Inc., 2026. All rights reserved.

// Package main is the entry point for the intel-engine CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/venturely/intel-engine/internal/catalog"
	"github.com/venturely/intel-engine/internal/engine"
	"github.com/venturely/intel-engine/internal/inference"
	"github.com/venturely/intel-engine/internal/secrets"
	"github.com/venturely/intel-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if set, otherwise the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the intel-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "intel-engine",
	Short: "Startup intelligence: research, analysis, matching, quality",
	Long: `intel-engine aggregates public research sources into market intelligence
for a startup profile. It synthesizes market analyses (with a language model
when configured, heuristics otherwise), scores investor and grant catalogs
against the profile, and grades business-plan sections.

Each capability is a subcommand: research, analyze, match, assess, and
catalog.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", secrets.Keys(s))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./intel-engine.yaml or ~/.config/intel-engine/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log component activity to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("intel-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "intel-engine"))
		}
	}

	viper.SetEnvPrefix("INTEL_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("research.timeout", "10s")
	viper.SetDefault("research.user_agent", "intel-engine/0.1")
	viper.SetDefault("research.source_timeout", "10s")
	viper.SetDefault("research.min_results", 2)
	viper.SetDefault("research.enable_encyclopedia", true)
	viper.SetDefault("research.enable_news_feed", true)
	viper.SetDefault("research.enable_dataset", true)
	viper.SetDefault("inference.model", "gemini-2.5-flash")
	viper.SetDefault("inference.timeout", "60s")
	viper.SetDefault("inference.max_retries", 2)
	viper.SetDefault("catalog.path", "catalog/intel.db")
	viper.SetDefault("match.grant_min_score", 70)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig maps resolved viper settings onto the typed config.
func engineConfig() types.EngineConfig {
	return types.EngineConfig{
		Research: types.ResearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("research.timeout"),
				UserAgent: viper.GetString("research.user_agent"),
			},
			SourceTimeout:      viper.GetDuration("research.source_timeout"),
			MinResults:         viper.GetInt("research.min_results"),
			EnableEncyclopedia: viper.GetBool("research.enable_encyclopedia"),
			EnableNewsFeed:     viper.GetBool("research.enable_news_feed"),
			EnableDataset:      viper.GetBool("research.enable_dataset"),
		},
		Inference: types.InferenceConfig{
			Model:      viper.GetString("inference.model"),
			APIKey:     secretDefault("gemini-api-key", viper.GetString("inference.api_key")),
			Timeout:    viper.GetDuration("inference.timeout"),
			MaxRetries: viper.GetInt("inference.max_retries"),
		},
		Catalog: types.CatalogConfig{
			Path: viper.GetString("catalog.path"),
		},
		Match: types.MatchConfig{
			GrantMinScore: viper.GetInt("match.grant_min_score"),
		},
	}
}

// buildLogger returns a development logger when --verbose is set, a no-op
// logger otherwise so tables stay clean on stdout.
func buildLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// buildEngine assembles the engine with its catalog store. The caller must
// call the returned cleanup function.
func buildEngine(ctx context.Context, cmd *cobra.Command) (*engine.Engine, func(), error) {
	cfg := engineConfig()
	logger := buildLogger(cmd)

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return nil, nil, fmt.Errorf("opening catalog: %w", err)
	}

	var infer inference.Client
	if cfg.Inference.APIKey != "" {
		client, err := inference.NewGeminiClient(ctx, cfg.Inference)
		if err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("building inference client: %w", err)
		}
		infer = client
	}

	e := engine.New(cfg, store, infer, logger)
	cleanup := func() {
		store.Close()
		_ = logger.Sync()
	}
	return e, cleanup, nil
}

// commandContext returns a context bounded generously above the per-call
// timeouts so a stuck command still terminates.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Minute)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
