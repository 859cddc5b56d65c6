// Copyright (c) 2026 Michael Klier <chi@chimeric.de>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chimeric/dokuctl/internal/config"
)

func TestMangleArguments(t *testing.T) {
	absPath, err := filepath.Abs(filepath.Join("testdata", "sets.yaml"))
	assert.NoError(t, err)
	t.Setenv("DOKUCTL_CFG", absPath)

	_, err = config.Load("")
	assert.NoError(t, err)
	t.Cleanup(func() { config.Config = config.Type{} })

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "explicit set is spliced in place",
			args: []string{"dokuctl", "allpages", "@wide", "--color"},
			want: []string{"dokuctl", "allpages", "--titles", "--output", "json", "--color"},
		},
		{
			name: "implicit defaults set",
			args: []string{"dokuctl", "allpages", "--color"},
			want: []string{"dokuctl", "allpages", "--sort", "name", "--color"},
		},
		{
			name: "help short circuits expansion",
			args: []string{"dokuctl", "allpages", "@wide", "--help"},
			want: []string{"dokuctl", "allpages", "--help"},
		},
		{
			name: "command without config sets is untouched",
			args: []string{"dokuctl", "status"},
			want: []string{"dokuctl", "status"},
		},
		{
			name: "unknown explicit set expands to nothing",
			args: []string{"dokuctl", "allpages", "@nope", "--color"},
			want: []string{"dokuctl", "allpages", "--color"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string(nil), tt.args...)
			assert.Equal(t, tt.want, mangleArguments(args))
		})
	}
}
