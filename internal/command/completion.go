// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/chimeric/dokuctl/internal/meta"
)

const bashCompletionScript = `# bash completion for dokuctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_dokuctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "acl allpages backlinks changes completion html info links put raw status versions --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--wiki -w --user -u --password -p --color -c --filter -f --local -l --output -o --sort -s --timeout --titles -t --tldr"

    case "$cmd" in
        changes)
            local opts="$common --since"
            ;;
        put)
            local opts="$common --file --summary --minor"
            ;;
        raw|html|info)
            local opts="$common --rev"
            ;;
        versions)
            local opts="$common --offset"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    return 0
}

complete -F _dokuctl dokuctl
`

const zshCompletionScript = `#compdef dokuctl

_dokuctl() {
  local -a cmds
  cmds=(
    'acl:show permission mask for a page'
    'allpages:list all wiki pages'
    'backlinks:list pages linking to a page'
    'changes:list recent changes'
    'completion:generate shell completion script'
    'html:fetch a page rendered as XHTML'
    'info:show page metadata'
    'links:list links contained in a page'
    'put:store raw wiki text as a new revision'
    'raw:fetch the raw wiki text of a page'
    'status:show wiki and RPC version'
    'versions:list the history of a page'
  )

  local -a common
  common=(
  '(-w --wiki)'{-w,--wiki}'[wiki base URL]:url'
  '(-u --user)'{-u,--user}'[wiki user]:user'
  '(-p --password)'{-p,--password}'[wiki password]:password'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-l --local)'{-l,--local}'[render timestamps in local time]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '--timeout[request timeout]:duration'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'dokuctl commands' cmds
    return
  fi

  case $words[2] in
    raw|html|info)
      _arguments -C $common '--rev[page revision]:rev' '::page'
      ;;
    versions)
      _arguments -C $common '--offset[list offset]:offset' '::page'
      ;;
    changes)
      _arguments -C $common '--since[UTC timestamp]:since'
      ;;
    put)
      _arguments -C $common '--file[wiki text file]:file:_files' '--summary[edit summary]:summary' '--minor[minor edit]' '::page'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '::page'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _dokuctl dokuctl
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(os.Stdout, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(os.Stdout, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: dokuctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "dokuctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
