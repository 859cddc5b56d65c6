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

func AllPagesCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "allpages") {
		return nil
	}

	client, err := NewWikiClient(ctx, cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	pages, err := client.AllPages()
	if err != nil {
		return err
	}

	pages = output.FilterList(pages, cmd.String("filter"))
	output.SortList(pages, cmd.String("sort"))

	output.List(pages, cmd, os.Stdout)
	return nil
}

func AllPagesCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "allpages",
		Usage:     "list all pages of the remote wiki",
		UsageText: `dokuctl allpages [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags("allpages")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return AllPagesCommandAction(ctx, c)
		},
	}
}
