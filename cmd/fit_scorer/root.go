package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/fit-scorer/internal/cache"
	"github.com/jonathan/fit-scorer/internal/catalog"
	"github.com/jonathan/fit-scorer/internal/config"
	"github.com/jonathan/fit-scorer/internal/llm"
	"github.com/jonathan/fit-scorer/internal/logger"
	"github.com/jonathan/fit-scorer/internal/pipeline"
	"github.com/jonathan/fit-scorer/internal/policy"
)

// cli holds the state shared by every subcommand
type cli struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.New()}

	rootCmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Score how well a CV fits a job description",
		Long:          "fit-scorer extracts requirements from a job description, matches them against a CV and produces a 0-100 fit score with a full breakdown.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "a config file (default is fit-scorer.yaml in current directory)")
	flags.BoolP("debug", "d", false, "debug logging")
	flags.BoolP("json", "j", false, "json format for logging")
	flags.BoolP("verbose", "v", false, "print a human-readable summary to stderr")

	_ = c.v.BindPFlag("log.debug", flags.Lookup("debug"))
	_ = c.v.BindPFlag("log.json", flags.Lookup("json"))
	_ = c.v.BindPFlag("verbose", flags.Lookup("verbose"))

	rootCmd.AddCommand(newScoreCmd(c), newExtractCmd(c), newIndustryCmd(c))
	return rootCmd
}

// app is the loaded configuration plus the process-wide dependencies built from it
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	cat    *catalog.Catalog

	closers []func() error
}

func (c *cli) load() (*app, error) {
	cfg, err := config.Load(c.v, c.cfgFile)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return &app{cfg: cfg, logger: log, cat: cat}, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("failed to release resource", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// classifier returns the priority classifier selected by the configuration
func (a *app) classifier(ctx context.Context) (policy.Classifier, error) {
	rules := policy.NewRuleClassifier(a.cat)
	if !a.cfg.LLM.Enabled {
		return rules, nil
	}
	llmConfig := llm.DefaultConfig().
		WithModel(llm.TierLite, a.cfg.LLM.LiteModel).
		WithModel(llm.TierStandard, a.cfg.LLM.StandardModel)
	client, err := llm.NewClient(ctx, llmConfig, a.cfg.LLM.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	a.closers = append(a.closers, client.Close)
	a.logger.Debug("model-backed classification enabled", zap.String("model", llmConfig.GetModel(llm.TierLite)))
	return policy.NewLLMClassifier(client, rules, a.logger), nil
}

func (a *app) engine(ctx context.Context) (*pipeline.Engine, error) {
	classifier, err := a.classifier(ctx)
	if err != nil {
		return nil, err
	}
	opts := []pipeline.Option{
		pipeline.WithLogger(a.logger),
		pipeline.WithClassifier(classifier),
		pipeline.WithProgress(func(ev pipeline.ProgressEvent) {
			a.logger.Debug("stage finished",
				zap.String(logger.FieldStage, ev.Stage),
				zap.Bool("degraded", ev.Degraded),
				zap.Duration("elapsed", ev.Elapsed))
		}),
	}
	if a.cfg.Cache.Enabled {
		rc := cache.NewRedis(ctx, cache.RedisOptions{
			Addr:     a.cfg.Cache.Addr,
			Password: a.cfg.Cache.Password,
			DB:       a.cfg.Cache.DB,
			TTL:      a.cfg.Cache.TTL,
		}, a.logger)
		a.closers = append(a.closers, rc.Close)
		opts = append(opts, pipeline.WithCache(rc, a.cfg.Cache.TTL))
	}
	return pipeline.NewEngine(a.cat, opts...), nil
}

// withModelTimeout bounds ctx when model calls may be made
func (a *app) withModelTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if !a.cfg.LLM.Enabled {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.cfg.LLM.Timeout)
}

// marshalOutput renders v as indented JSON
func marshalOutput(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// writeOutput writes data to path, or to the command's stdout when path is empty
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
