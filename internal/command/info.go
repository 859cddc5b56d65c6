// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/chimeric/dokuctl/internal/meta"
	"github.com/chimeric/dokuctl/internal/output"
)

func InfoCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "info") {
		return nil
	}

	id, err := PageArg(cmd)
	if err != nil {
		return err
	}

	client, err := NewWikiClient(ctx, cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	info, err := client.PageInfo(id, int(cmd.Int("rev")))
	if err != nil {
		return err
	}

	cols := []output.Column{
		{Key: "name", Title: "name"},
		{Key: "lastModified", Title: "lastModified", Time: true},
		{Key: "author", Title: "author"},
		{Key: "version", Title: "version"},
	}
	return EmitMapping(info, cols, cmd)
}

func InfoCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "show information about a page",
		UsageText: `dokuctl info <page> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			revFlag,
			tldrFlag,
		}, NewGlobalFlags("info")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return InfoCommandAction(ctx, c)
		},
	}
}
