// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

// Package command defines the dokuctl subcommands. Each subcommand maps onto
// exactly one remote wiki operation: it validates flags, constructs a client,
// performs the call, and hands the result to the output package.
package command
