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

func StatusCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "status") {
		return nil
	}

	client, err := NewWikiClient(ctx, cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	rpcVersion, err := client.RPCVersionSupported()
	if err != nil {
		return err
	}

	result := map[string]any{
		"wiki":       cmd.String("wiki"),
		"version":    client.Version,
		"rpcversion": rpcVersion,
	}

	cols := []output.Column{
		{Key: "wiki", Title: "wiki"},
		{Key: "version", Title: "version"},
		{Key: "rpcversion", Title: "rpcversion"},
	}
	return EmitMapping(result, cols, cmd)
}

func StatusCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "show the remote wiki version and supported RPC version",
		UsageText: `dokuctl status [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags("status")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return StatusCommandAction(ctx, c)
		},
	}
}
