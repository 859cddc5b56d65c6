// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/chimeric/dokuctl/internal/config"
)

func init() {
	cfg, _ = config.Load("")
}

var (
	cfg config.Type

	revFlag *cli.IntFlag = &cli.IntFlag{
		Name:  "rev",
		Usage: "revision timestamp to fetch (0 selects the current revision)",
	}

	offsetFlag *cli.IntFlag = &cli.IntFlag{
		Name:  "offset",
		Usage: "offset into the revision history",
	}

	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
)

// NewGlobalFlags builds the flag set shared by every subcommand. Values
// resolve flag > env > namespaced config key (<ns>.<flag>) > global config
// key.
func NewGlobalFlags(ns string) (flags []cli.Flag) {
	flags = []cli.Flag{
		NewWikiFlag(ns, cfg.Source),
		NewUserFlag(ns, cfg.Source),
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "user password; prompted on a terminal when omitted",
			// Deliberately no config file source: credentials don't belong
			// in dokuctl.yaml.
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("DOKUCTL_PASSWORD"),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "render timestamps in the local time zone",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"sort", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "remote call timeout",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("DOKUCTL_TIMEOUT"),
				yaml.YAML("timeout", altsrc.StringSourcer(cfg.Source)),
			),
			Value: 30 * time.Second,
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return
}

// NewWikiFlag constructs the flag naming the remote wiki, namespaced to a
// command and the config file.
func NewWikiFlag(ns string, path string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "wiki",
		Aliases: []string{"w"},
		Usage:   "base URL of the remote wiki",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DOKUCTL_WIKI"),
		),
	}

	return NameSpacedValueChainFlagFromConfigFile(ns, path, flag)
}

// NewUserFlag constructs the flag carrying the username used when
// authenticating at the remote wiki.
func NewUserFlag(ns string, path string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "username to use when authenticating at the remote wiki",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DOKUCTL_USER"),
		),
	}

	return NameSpacedValueChainFlagFromConfigFile(ns, path, flag)
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas checks if the given executable exists on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
