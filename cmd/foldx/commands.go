package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opsxjacky/walkforward-folds/internal/config"
	"github.com/opsxjacky/walkforward-folds/internal/data"
	"github.com/opsxjacky/walkforward-folds/internal/engine"
	"github.com/opsxjacky/walkforward-folds/internal/report"
	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "foldx",
		Short:         "Extract walk-forward backtest folds from a multi-series panel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log.SetLevel(level)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", envOr("FOLDX_CONFIG", "folds.yaml"), "fold configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOr("FOLDX_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")

	root.AddCommand(newSummaryCmd(opts), newValidateCmd(opts))
	return root
}

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	var (
		workers int
		out     string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print or export a per-fold summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := prepare(opts.configPath)
			if err != nil {
				return err
			}

			summaries, err := report.Summarize(cmd.Context(), sess.extractor, sess.span, sess.folds, workers)
			if err != nil {
				return fmt.Errorf("failed to extract folds: %w", err)
			}

			if format == "" {
				format = sess.cfg.GetOutputFormat()
			}
			switch format {
			case "json":
				if out == "" {
					out = sess.cfg.GetOutputPath()
				}
				return report.ExportJSON(out, summaries)
			case "text":
				report.Print(cmd.OutOrStdout(), summaries)
				return nil
			default:
				return fmt.Errorf("unknown output format %q", format)
			}
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "number of folds extracted concurrently")
	cmd.Flags().StringVarP(&out, "out", "o", "", "JSON output path (json format only)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text or json")
	return cmd
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check data alignment and every fold range without writing output",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := prepare(opts.configPath)
			if err != nil {
				return err
			}

			it := sess.extractor.Folds(sess.folds)
			excluded := 0
			for it.Next() {
				excluded += len(it.Result().Excluded)
			}
			if err := it.Err(); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d folds OK (%d series exclusions)\n", len(sess.folds), excluded)
			return nil
		},
	}
}

type session struct {
	cfg       *config.Config
	span      *types.SpanIndex
	extractor *engine.Extractor
	folds     []types.FoldSpec
}

// prepare 加载配置与数据并构造提取器
func prepare(configPath string) (*session, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	var loader data.PanelLoader = data.NewCSVLoader()
	series, err := loader.LoadPanel(cfg.Data.Series)
	if err != nil {
		return nil, fmt.Errorf("failed to load series: %w", err)
	}

	var exog *types.Panel
	if cfg.Data.Exog != "" {
		exog, err = loader.LoadPanel(cfg.Data.Exog)
		if err != nil {
			return nil, fmt.Errorf("failed to load exog: %w", err)
		}
	}

	folds, err := cfg.ToFoldSpecs()
	if err != nil {
		return nil, err
	}

	ex, err := engine.New(series, exog, cfg.ToOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}

	log.WithFields(log.Fields{
		"series": series.Width(),
		"rows":   series.Len(),
		"folds":  len(folds),
		"exog":   exog != nil,
	}).Info("Loaded panel")

	return &session{cfg: cfg, span: series.Index(), extractor: ex, folds: folds}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
