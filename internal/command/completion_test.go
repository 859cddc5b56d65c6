// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionScripts(t *testing.T) {
	commands := []string{
		"acl", "allpages", "backlinks", "changes", "completion",
		"html", "info", "links", "put", "raw", "status", "versions",
	}

	for _, cmd := range commands {
		assert.Contains(t, bashCompletionScript, cmd)
		assert.Contains(t, zshCompletionScript, cmd)
	}

	// Aliased global flags carry their short form in both scripts.
	assert.Contains(t, bashCompletionScript, "--password -p")
	assert.Contains(t, bashCompletionScript, "--local -l")
	assert.Contains(t, zshCompletionScript, "{-p,--password}")
	assert.Contains(t, zshCompletionScript, "{-l,--local}")
}
