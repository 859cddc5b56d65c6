// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/chimeric/dokuctl/internal/config"
)

// Spit orchestrates filtering, transforming, sorting and rendering of a
// row-shaped dataset (a JSON array of objects) according to command flags
// and the column specification.
func Spit(raw bytes.Buffer, cols []Column, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// If raw, just dump it and go home.
	output := cmd.String("output")
	if output == "raw" {
		_, _ = w.Write(raw.Bytes())
		return
	}

	dataset := gjson.Parse(raw.String())

	// Filter out the rows we don't want. Do it here so that the following
	// processes work on a smaller dataset.
	rows := FilterDataset(dataset, cols, cmd.String("filter"))

	local := cmd.Bool("local")
	for _, row := range rows {
		for _, col := range cols {
			if col.Time && local {
				row[col.Title] = localTime(row[col.Title])
			}
			if col.Transform != nil {
				row[col.Title] = col.Transform(row[col.Title])
			}
		}
	}

	SortDataset(rows, cmd.String("sort"))

	switch output {
	case "json":
		jsonOutput, err := json.Marshal(rows)
		if err != nil {
			log.Errorf("marshaling output: %v", err)
			return
		}
		_, _ = w.Write(jsonOutput)
		fmt.Fprintln(w)
	case "yaml":
		yamlOutput, err := yaml.Marshal(rows)
		if err != nil {
			log.Errorf("marshaling output: %v", err)
			return
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(rows, cols, cmd, w)
	}
}

// Scalar renders a single plain value: page text, HTML, a permission mask.
func Scalar(value interface{}, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	switch cmd.String("output") {
	case "raw":
		// Byte-exact payload, no trailing newline.
		fmt.Fprint(w, value)
	case "json":
		jsonOutput, err := json.Marshal(value)
		if err != nil {
			log.Errorf("marshaling output: %v", err)
			return
		}
		_, _ = w.Write(jsonOutput)
		fmt.Fprintln(w)
	case "yaml":
		yamlOutput, err := yaml.Marshal(value)
		if err != nil {
			log.Errorf("marshaling output: %v", err)
			return
		}
		_, _ = w.Write(yamlOutput)
	default:
		fmt.Fprintln(w, value)
	}
}

// List renders a flat list of items, one per line when output=text.
func List(items []string, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.Marshal(items)
		if err != nil {
			log.Errorf("marshaling output: %v", err)
			return
		}
		_, _ = w.Write(jsonOutput)
		fmt.Fprintln(w)
	case "yaml":
		yamlOutput, err := yaml.Marshal(items)
		if err != nil {
			log.Errorf("marshaling output: %v", err)
			return
		}
		_, _ = w.Write(yamlOutput)
	default:
		for _, item := range items {
			fmt.Fprintln(w, item)
		}
	}
}

// Mapping renders a single key/value result as "key: value" lines in column
// order when output=text, honoring --local on time columns.
func Mapping(raw bytes.Buffer, cols []Column, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	if cmd.String("output") == "raw" {
		_, _ = w.Write(raw.Bytes())
		return
	}

	doc := gjson.Parse(raw.String())

	row := make(map[string]interface{}, len(cols))
	local := cmd.Bool("local")
	for _, col := range cols {
		value := doc.Get(col.Key).Value()
		if col.Time && local {
			value = localTime(value)
		}
		if col.Transform != nil {
			value = col.Transform(value)
		}
		row[col.Title] = value
	}

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.Marshal(row)
		if err != nil {
			log.Errorf("marshaling output: %v", err)
			return
		}
		_, _ = w.Write(jsonOutput)
		fmt.Fprintln(w)
	case "yaml":
		yamlOutput, err := yaml.Marshal(row)
		if err != nil {
			log.Errorf("marshaling output: %v", err)
			return
		}
		_, _ = w.Write(yamlOutput)
	default:
		for _, col := range cols {
			fmt.Fprintf(w, "%s: %s\n", col.Title, InterfaceToString(row[col.Title], "-"))
		}
	}
}

// SortDataset sorts rows in place per the comma-separated sort spec. A
// leading '-' on a key reverses that key's order.
func SortDataset(rows []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	keys := strings.Split(spec, ",")

	sort.SliceStable(rows, func(i, j int) bool {
		for _, key := range keys {
			desc := strings.HasPrefix(key, "-")
			k := strings.TrimPrefix(key, "-")

			a := InterfaceToString(rows[i][k])
			b := InterfaceToString(rows[j][k])
			if a == b {
				continue
			}
			if desc {
				return a > b
			}
			return a < b
		}
		return false
	})
}

// SortList orders a flat list in place per the sort spec. List items carry a
// single value, so only the direction of the first key applies.
func SortList(items []string, spec string) {
	if spec == "" {
		return
	}

	sort.Strings(items)
	if strings.HasPrefix(strings.Split(spec, ",")[0], "-") {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options.
func TableWriter(
	resultSet []map[string]interface{},
	cols []Column,
	cmd *cli.Command,
	w io.Writer) {

	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(cols))
		for _, col := range cols {
			row = append(row, InterfaceToString(result[col.Title], "-"))
		}
		rows = append(rows, row)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			pad, _ := config.GetInt("padding", 0)

			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if cmd.Bool("titles") {
		var headers []string
		for _, col := range cols {
			headers = append(headers, col.Title)
		}

		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		// Wiki results carry no true floats; timestamps, sizes, and
		// revisions are all integral.
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
