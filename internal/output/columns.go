// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

package output

import (
	"os"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// Column describes one attribute of a result row: the key to extract from
// the marshalled JSON row, the key/title to use in the output, and an
// optional value transformation.
type Column struct {
	// Key is the gjson path into the row.
	Key string
	// Title is the output key. Doubles as the column title when output=text.
	Title string
	// Time marks an RFC3339 timestamp column, rendered in the local zone
	// when --local is set.
	Time bool
	// Transform is applied to the value before rendering.
	Transform func(interface{}) interface{}
}

// Cols is a shorthand constructor for the common case of untransformed
// columns whose output key equals the JSON key.
func Cols(keys ...string) []Column {
	cols := make([]Column, 0, len(keys))
	for _, k := range keys {
		cols = append(cols, Column{Key: k, Title: k})
	}
	return cols
}

// ByteSize renders a numeric byte count in humanized form (e.g. "2.4 kB").
func ByteSize(value interface{}) interface{} {
	switch v := value.(type) {
	case float64:
		if v < 0 {
			return value
		}
		return humanize.Bytes(uint64(v))
	case int:
		if v < 0 {
			return value
		}
		return humanize.Bytes(uint64(v))
	default:
		return value
	}
}

// Age renders an RFC3339 timestamp as a relative age (e.g. "3 days ago").
func Age(value interface{}) interface{} {
	s, ok := value.(string)
	if !ok {
		return value
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return value
	}
	return humanize.Time(t)
}

// localTime converts an RFC3339 timestamp to the zone named by TZ, falling
// back to the system zone.
func localTime(value interface{}) interface{} {
	s, ok := value.(string)
	if !ok {
		return value
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		log.Debugf("failed to parse time: %s", s)
		return value
	}

	loc := time.Local
	if tz := os.Getenv("TZ"); tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	return t.In(loc).Format("2006-01-02T15:04:05MST")
}
