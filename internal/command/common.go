// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/chimeric/dokuctl/internal/meta"
	"github.com/chimeric/dokuctl/internal/output"
	"github.com/chimeric/dokuctl/internal/version"
	"github.com/chimeric/dokuctl/internal/wiki"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr dokuctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "dokuctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewWikiClient constructs a wiki client from the command's connection flags.
// Construction performs the reachability check and version handshake, so a
// bad URL or bad credentials fail here, before any operation is dispatched.
func NewWikiClient(ctx context.Context, cmd *cli.Command) (*wiki.Client, error) {
	wikiURL := cmd.String("wiki")
	if wikiURL == "" {
		return nil, errors.New("no wiki specified (--wiki, DOKUCTL_WIKI, or a wiki: config entry)")
	}

	password, err := resolvePassword(cmd)
	if err != nil {
		return nil, err
	}

	return wiki.New(ctx, wiki.Config{
		URL:       wikiURL,
		User:      cmd.String("user"),
		Password:  password,
		Timeout:   cmd.Duration("timeout"),
		UserAgent: "dokuctl/" + version.Version,
	})
}

// resolvePassword returns the password flag value, prompting on the terminal
// when a user was given without one.
func resolvePassword(cmd *cli.Command) (string, error) {
	if p := cmd.String("password"); p != "" {
		return p, nil
	}
	if cmd.String("user") == "" {
		return "", nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no password given and stdin is not a terminal")
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", cmd.String("user"))
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	return string(b), nil
}

// PageArg returns the wiki page id given as the positional argument.
func PageArg(cmd *cli.Command) (string, error) {
	id := cmd.Args().First()
	if id == "" {
		return "", errors.New("you have to specify a wiki page")
	}
	return id, nil
}

// EmitRows marshals a slice of results and passes it to the common output
// routine.
func EmitRows(results any, cols []output.Column, cmd *cli.Command) error {
	jsonBytes, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	output.Spit(*bytes.NewBuffer(jsonBytes), cols, cmd, os.Stdout)
	return nil
}

// EmitMapping marshals a single result and renders it as a key/value
// mapping.
func EmitMapping(result any, cols []output.Column, cmd *cli.Command) error {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	output.Mapping(*bytes.NewBuffer(jsonBytes), cols, cmd, os.Stdout)
	return nil
}
