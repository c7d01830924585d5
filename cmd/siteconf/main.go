package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/siteconf/cmd/siteconf/commands"
	derrors "git.home.luguber.info/inful/siteconf/internal/errors"
	"git.home.luguber.info/inful/siteconf/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("siteconf"),
		kong.Description("Load, validate and emit the documentation site configuration."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	err := parser.Run(&commands.Global{}, cli)
	derrors.NewCLIErrorAdapter(cli.Verbose, nil).HandleError(err)
}
