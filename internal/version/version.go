// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

// Package version holds the dokuctl release version.
package version

// Version is overridden at build time via
// -ldflags "-X github.com/chimeric/dokuctl/internal/version.Version=...".
var Version = "0.1.0-dev"
