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

func AclCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "acl") {
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

	perms, err := client.AclCheck(id)
	if err != nil {
		return err
	}

	output.Scalar(perms, cmd, os.Stdout)
	return nil
}

func AclCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "acl",
		Usage:     "show the caller's permission mask for a page",
		UsageText: `dokuctl acl <page> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags("acl")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return AclCommandAction(ctx, c)
		},
	}
}
