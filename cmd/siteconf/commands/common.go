package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/siteconf/internal/foundation/normalization"
)

// Global context passed to subcommands.
type Global struct {
	Stdout io.Writer // nil means os.Stdout
}

func (g *Global) out() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Site configuration file path" default:"siteconf.yaml" type:"path"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogLevel  string           `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat string           `name:"log-format" help:"Log format (text, json)" default:"text"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Check CheckCmd `cmd:"" help:"Load and validate the site configuration"`
	Emit  EmitCmd  `cmd:"" help:"Write the configuration in the shape the site generator reads"`
	Init  InitCmd  `cmd:"" help:"Write the default site configuration"`
	Show  ShowCmd  `cmd:"" help:"Summarize locales and navigation"`
}

var levelNormalizer = normalization.NewNormalizer(map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}, slog.LevelInfo)

var logFormatNormalizer = normalization.NewNormalizer(map[string]string{
	"text": "text",
	"json": "json",
}, "text")

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level, err := levelNormalizer.NormalizeWithError(c.LogLevel)
	if err != nil {
		return err
	}
	if c.Verbose {
		level = slog.LevelDebug
	}
	format, err := logFormatNormalizer.NormalizeWithError(c.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(os.Stderr, level, format))
	return nil
}

func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
