// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

// Package output provides filtering, sorting, and emission utilities used by
// commands to present wiki results in various formats. Results come in three
// structural shapes: scalars, lists, and key/value mappings (single or
// repeated). Every shape can be rendered as text, JSON, or YAML.
package output
