// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/chimeric/dokuctl/internal/meta"
	"github.com/chimeric/dokuctl/internal/output"
)

func ChangesCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "changes") {
		return nil
	}

	since := int64(cmd.Int("since"))
	if since == 0 {
		since = time.Now().Unix()
	}

	client, err := NewWikiClient(ctx, cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	changes, err := client.RecentChanges(since)
	if err != nil {
		return err
	}

	cols := []output.Column{
		{Key: "name", Title: "name"},
		{Key: "lastModified", Title: "lastModified", Time: true},
		{Key: "author", Title: "author"},
		{Key: "version", Title: "version"},
		{Key: "perms", Title: "perms"},
		{Key: "size", Title: "size"},
	}

	// Humanized sizes are for eyeballs only; json/yaml keep raw bytes.
	if cmd.String("output") == "text" {
		cols[5].Transform = output.ByteSize
	}

	return EmitRows(changes, cols, cmd)
}

func ChangesCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "changes",
		Usage:     "list recent changes of the wiki since a UTC timestamp",
		UsageText: `dokuctl changes [options]   (--since defaults to now)`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:  "since",
				Usage: "UTC timestamp to list changes from (0 means now)",
			},
			tldrFlag,
		}, NewGlobalFlags("changes")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return ChangesCommandAction(ctx, c)
		},
	}
}
