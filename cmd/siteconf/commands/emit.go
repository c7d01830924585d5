package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/siteconf/internal/config"
	derrors "git.home.luguber.info/inful/siteconf/internal/errors"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/vuepress"
)

// EmitCmd implements the 'emit' command.
type EmitCmd struct {
	Format  string `short:"f" help:"Output format (json, js, yaml); inferred from --output when empty"`
	Output  string `short:"o" help:"Output file; stdout when empty" type:"path"`
	Builtin bool   `help:"Emit the built-in default configuration instead of loading --config"`
}

// Run executes the emit command.
func (e *EmitCmd) Run(g *Global, root *CLI) error {
	format, err := e.resolveFormat()
	if err != nil {
		return derrors.New(derrors.CategoryConfig, derrors.SeverityError, err.Error())
	}

	var cfg *config.SiteConfig
	if e.Builtin {
		cfg = config.Default()
	} else if cfg, err = config.Load(root.Config); err != nil {
		return err
	}

	if e.Output == "" {
		data, err := vuepress.Encode(cfg, format)
		if err != nil {
			return derrors.InternalError("encode generator configuration", err)
		}
		if _, err := g.out().Write(data); err != nil {
			return derrors.EmitFailed("stdout", err)
		}
		return nil
	}

	slog.Debug("Emitting configuration", logfields.Path(e.Output), logfields.Format(string(format)))
	return vuepress.WriteConfig(cfg, e.Output, format)
}

func (e *EmitCmd) resolveFormat() (vuepress.Format, error) {
	if e.Format == "" {
		return vuepress.FormatForPath(e.Output), nil
	}
	f, err := vuepress.ParseFormat(e.Format)
	if err != nil {
		return "", fmt.Errorf("--format: %w", err)
	}
	return f, nil
}
