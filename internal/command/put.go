// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/chimeric/dokuctl/internal/meta"
)

func PutCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "put") {
		return nil
	}

	id, err := PageArg(cmd)
	if err != nil {
		return err
	}

	var text []byte
	if file := cmd.String("file"); file != "" {
		text, err = os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
	} else {
		text, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	client, err := NewWikiClient(ctx, cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.PutPage(id, string(text), cmd.String("summary"), cmd.Bool("minor")); err != nil {
		return err
	}
	log.Debugf("stored %s (%d bytes)", id, len(text))

	return nil
}

func PutCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "put",
		Usage:     "store raw wiki text as the new current revision of a page",
		UsageText: `dokuctl put <page> [--file <path>] [options]   (reads stdin without --file)`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "file containing the raw wiki text (defaults to stdin)",
			},
			&cli.StringFlag{
				Name:  "summary",
				Usage: "edit summary",
				Validator: func(value string) error {
					return FlagValidators(value, JammedFlagValidator)
				},
			},
			&cli.BoolFlag{
				Name:  "minor",
				Usage: "mark as minor edit",
			},
			tldrFlag,
		}, NewGlobalFlags("put")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return PutCommandAction(ctx, c)
		},
	}
}
