// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputValidator(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "text", value: "text"},
		{name: "json", value: "json"},
		{name: "raw", value: "raw"},
		{name: "yaml", value: "yaml"},
		{name: "unsupported", value: "xml", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OutputValidator(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJammedFlagValidator(t *testing.T) {
	assert.NoError(t, JammedFlagValidator("reworked intro"))
	assert.Error(t, JammedFlagValidator("--minor"))
}

func TestFlagValidators(t *testing.T) {
	err := FlagValidators("json", OutputValidator, JammedFlagValidator)
	assert.NoError(t, err)

	err = FlagValidators("--json", OutputValidator, JammedFlagValidator)
	assert.Error(t, err)
}
