// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

// dokuctl is the main package for the dokuctl command line tool. It wires the
// CLI, delegates to internal packages, and serves as the entry point.
package main
