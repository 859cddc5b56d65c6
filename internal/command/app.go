// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/chimeric/dokuctl/internal/config"
	"github.com/chimeric/dokuctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// The arg[1] immediately following the binary (arg[0]) is the dokuctl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load(ns)
	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:  "dokuctl",
		Usage: "DokuWiki Control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "dokuctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		AclCommandBuilder(app, meta),
		AllPagesCommandBuilder(app, meta),
		BacklinksCommandBuilder(app, meta),
		ChangesCommandBuilder(app, meta),
		CompletionCommandBuilder(app, meta),
		HTMLCommandBuilder(app, meta),
		InfoCommandBuilder(app, meta),
		LinksCommandBuilder(app, meta),
		PutCommandBuilder(app, meta),
		RawCommandBuilder(app, meta),
		StatusCommandBuilder(app, meta),
		VersionsCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
