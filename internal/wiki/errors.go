// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

package wiki

import (
	"errors"
	"fmt"
)

// ErrPageID is returned by page-scoped operations called without a page id.
var ErrPageID = errors.New("a wiki page id is required")

// Fault is a structured error returned by the remote XML-RPC interface. It
// carries the numeric fault code and the fault string verbatim.
type Fault struct {
	Code    int
	Message string
}

func (e *Fault) Error() string {
	return fmt.Sprintf("wiki fault %d: %s", e.Code, e.Message)
}

// URLError indicates the wiki URL was invalid or the endpoint unreachable.
type URLError struct {
	URL string
	Err error
}

func (e *URLError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("could not connect to <%s>", e.URL)
	}
	return fmt.Sprintf("could not connect to <%s>: %v", e.URL, e.Err)
}

func (e *URLError) Unwrap() error { return e.Err }
