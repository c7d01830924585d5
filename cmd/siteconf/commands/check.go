package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	derrors "git.home.luguber.info/inful/siteconf/internal/errors"
	"git.home.luguber.info/inful/siteconf/internal/lint"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
	"git.home.luguber.info/inful/siteconf/internal/watch"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	DocsDir         string `name:"docs-dir" help:"Documentation directory; verifies that internal nav links resolve to pages" type:"path"`
	RepoDir         string `name:"repo-dir" help:"Git checkout; verifies themeConfig repo, docsBranch and docsDir against it" type:"path"`
	Watch           bool   `short:"w" help:"Re-check whenever the configuration or docs change"`
	MetricsTextfile string `name:"metrics-textfile" help:"Write Prometheus metrics to this file (node-exporter textfile format)" type:"path"`
	Format          string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet           bool   `short:"q" help:"Only show errors"`
}

// Run executes the check command.
func (c *CheckCmd) Run(g *Global, root *CLI) error {
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if c.MetricsTextfile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}
	linter := lint.NewLinter(&lint.Config{DocsDir: c.DocsDir, RepoDir: c.RepoDir, Quiet: c.Quiet, Format: c.Format}, recorder)

	check := func() error {
		result, err := linter.LintFile(root.Config)
		if err != nil {
			return derrors.InternalError("check documentation tree", err)
		}
		if err := lint.NewFormatter(c.Format).Format(g.out(), result); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
		if prom != nil {
			if err := prom.WriteTextfile(c.MetricsTextfile); err != nil {
				slog.Warn("Failed to write metrics textfile", logfields.Path(c.MetricsTextfile), logfields.Error(err))
			}
		}
		if result.HasErrors() {
			return derrors.New(derrors.CategoryValidation, derrors.SeverityError,
				fmt.Sprintf("configuration has %d error(s)", result.ErrorCount())).
				WithContext("path", root.Config)
		}
		return nil
	}

	if !c.Watch {
		return check()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return c.watch(ctx, root.Config, check)
}

func (c *CheckCmd) watch(ctx context.Context, configPath string, check func() error) error {
	report := func() {
		if err := check(); err != nil {
			slog.Error("Check failed", logfields.Error(err))
		}
	}
	w, err := watch.NewConfigWatcher(configPath, watch.DefaultDebounce, func(context.Context) { report() })
	if err != nil {
		return derrors.InternalError("start watcher", err)
	}
	if c.DocsDir != "" {
		if err := w.AddDocsDir(c.DocsDir); err != nil {
			return derrors.InternalError("start watcher", err)
		}
	}
	report()
	return w.Run(ctx)
}
