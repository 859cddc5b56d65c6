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

func LinksCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "links") {
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

	links, err := client.Links(id)
	if err != nil {
		return err
	}

	cols := []output.Column{
		{Key: "type", Title: "type"},
		{Key: "page", Title: "page"},
		{Key: "href", Title: "href"},
	}
	return EmitRows(links, cols, cmd)
}

func LinksCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "links",
		Usage:     "list the links contained in a page",
		UsageText: `dokuctl links <page> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags("links")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return LinksCommandAction(ctx, c)
		},
	}
}
