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

func VersionsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "versions") {
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

	versions, err := client.PageVersions(id, int(cmd.Int("offset")))
	if err != nil {
		return err
	}

	cols := []output.Column{
		{Key: "version", Title: "version"},
		{Key: "modified", Title: "modified", Time: true},
		{Key: "user", Title: "user"},
		{Key: "ip", Title: "ip"},
		{Key: "type", Title: "type"},
		{Key: "sum", Title: "sum"},
	}
	return EmitRows(versions, cols, cmd)
}

func VersionsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "versions",
		Usage:     "list the available revisions of a page",
		UsageText: `dokuctl versions <page> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			offsetFlag,
			tldrFlag,
		}, NewGlobalFlags("versions")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return VersionsCommandAction(ctx, c)
		},
	}
}
