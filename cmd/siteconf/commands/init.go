package commands

import (
	"fmt"

	"git.home.luguber.info/inful/siteconf/internal/config"
	derrors "git.home.luguber.info/inful/siteconf/internal/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	out := g.out()
	_, _ = fmt.Fprintf(out, "Writing site configuration to %s\n", root.Config)
	if err := config.WriteExample(root.Config, i.Force); err != nil {
		return derrors.Wrap(err, derrors.CategoryFileSystem, derrors.SeverityError, "initialization failed").
			WithContext("path", root.Config)
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
