// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/chimeric/dokuctl/internal/meta"
	"github.com/chimeric/dokuctl/internal/output"
)

func HTMLCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "html") {
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

	html, err := client.PageHTML(id, int(cmd.Int("rev")))
	if err != nil {
		return err
	}

	output.Scalar(html, cmd, os.Stdout)
	return nil
}

func HTMLCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "html",
		Usage:     "fetch the rendered HTML body of a page",
		UsageText: `dokuctl html <page> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			revFlag,
			tldrFlag,
		}, NewGlobalFlags("html")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return HTMLCommandAction(ctx, c)
		},
	}
}
