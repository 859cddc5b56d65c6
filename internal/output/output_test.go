// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT
// no-cloc

package output

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
)

// runWithFlags parses the given command line against the shared output flag
// set and hands the resulting command to fn.
func runWithFlags(t *testing.T, args []string, fn func(cmd *cli.Command)) {
	t.Helper()

	app := &cli.Command{
		Name: "render",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "text"},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "sort"},
			&cli.BoolFlag{Name: "local"},
			&cli.BoolFlag{Name: "titles"},
			&cli.BoolFlag{Name: "color"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			fn(cmd)
			return nil
		},
	}
	assert.NoError(t, app.Run(context.Background(), append([]string{"render"}, args...)))
}

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"name": "wiki:zebra", "version": 3.0, "author": "chi"},
		{"name": "wiki:alpha", "version": 1.0, "author": "anna"},
		{"name": "wiki:beta", "version": 2.0, "author": "bob"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by name",
			spec:      "name",
			wantOrder: []string{"wiki:alpha", "wiki:beta", "wiki:zebra"},
		},
		{
			name:      "descending by name",
			spec:      "-name",
			wantOrder: []string{"wiki:zebra", "wiki:beta", "wiki:alpha"},
		},
		{
			name:      "ascending by version",
			spec:      "version",
			wantOrder: []string{"wiki:alpha", "wiki:beta", "wiki:zebra"},
		},
		{
			name:      "descending by version",
			spec:      "-version",
			wantOrder: []string{"wiki:zebra", "wiki:beta", "wiki:alpha"},
		},
		{
			name:      "multiple fields",
			spec:      "author,name",
			wantOrder: []string{"wiki:alpha", "wiki:beta", "wiki:zebra"},
		},
		{
			name:      "empty spec",
			spec:      "",
			wantOrder: []string{"wiki:zebra", "wiki:alpha", "wiki:beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedName := range tt.wantOrder {
				assert.Equal(t, expectedName, data[i]["name"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{
			name:  "string",
			value: "start",
			want:  "start",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "float64 integral",
			value: 1690000000.0,
			want:  "1690000000",
		},
		{
			name:  "bool true",
			value: true,
			want:  "true",
		},
		{
			name:  "nil default",
			value: nil,
			want:  "",
		},
		{
			name:     "nil custom",
			value:    nil,
			emptyVal: "-",
			want:     "-",
		},
		{
			name:  "slice",
			value: []string{"a", "b"},
			want:  `["a","b"]`,
		},
		{
			name:  "map",
			value: map[string]int{"x": 1},
			want:  `{"x":1}`,
		},
		{
			name:  "zero value int",
			value: 0,
			want:  "",
		},
		{
			name:     "zero value with custom empty",
			value:    0,
			emptyVal: "N/A",
			want:     "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []Filter
	}{
		{
			name: "empty spec",
			spec: "",
			want: nil,
		},
		{
			name: "equality",
			spec: "author=chi",
			want: []Filter{{Key: "author", Operand: "=", Target: "chi"}},
		},
		{
			name: "negated equality",
			spec: "author!=chi",
			want: []Filter{{Key: "author", Negate: true, Operand: "=", Target: "chi"}},
		},
		{
			name: "prefix",
			spec: "name^wiki:",
			want: []Filter{{Key: "name", Operand: "^", Target: "wiki:"}},
		},
		{
			name: "regex",
			spec: "name/^wiki:.*$",
			want: []Filter{{Key: "name", Operand: "/", Target: "^wiki:.*$"}},
		},
		{
			name: "multiple",
			spec: "author=chi,version>2",
			want: []Filter{
				{Key: "author", Operand: "=", Target: "chi"},
				{Key: "version", Operand: ">", Target: "2"},
			},
		},
		{
			name: "invalid is dropped",
			spec: "bogus",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFilters(tt.spec)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildFiltersCustomDelim(t *testing.T) {
	t.Setenv("DOKUCTL_FILTER_DELIM", ";")
	got := BuildFilters("author=chi;name^wiki:")
	assert.Len(t, got, 2)
	assert.Equal(t, "author", got[0].Key)
	assert.Equal(t, "name", got[1].Key)
}

func TestFilterDataset(t *testing.T) {
	raw := `[
		{"name":"wiki:start","author":"chi","version":3},
		{"name":"wiki:syntax","author":"anna","version":1},
		{"name":"playground:playground","author":"chi","version":2}
	]`
	cols := Cols("name", "author", "version")

	tests := []struct {
		name      string
		spec      string
		wantNames []string
	}{
		{
			name:      "no filters keeps everything",
			spec:      "",
			wantNames: []string{"wiki:start", "wiki:syntax", "playground:playground"},
		},
		{
			name:      "equality",
			spec:      "author=chi",
			wantNames: []string{"wiki:start", "playground:playground"},
		},
		{
			name:      "negated equality",
			spec:      "author!=chi",
			wantNames: []string{"wiki:syntax"},
		},
		{
			name:      "prefix",
			spec:      "name^wiki:",
			wantNames: []string{"wiki:start", "wiki:syntax"},
		},
		{
			name:      "contains",
			spec:      "name@play",
			wantNames: []string{"playground:playground"},
		},
		{
			name:      "regex",
			spec:      "name/ground$",
			wantNames: []string{"playground:playground"},
		},
		{
			name:      "numeric compare on string form",
			spec:      "version>1",
			wantNames: []string{"wiki:start", "playground:playground"},
		},
		{
			name:      "conjunction",
			spec:      "author=chi,name^wiki:",
			wantNames: []string{"wiki:start"},
		},
		{
			name:      "nothing matches",
			spec:      "author=nobody",
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := FilterDataset(gjson.Parse(raw), cols, tt.spec)
			var names []string
			for _, row := range rows {
				names = append(names, row["name"].(string))
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilterDatasetProjectsColumns(t *testing.T) {
	raw := `[{"name":"wiki:start","author":"chi","version":3,"extra":"dropped"}]`
	rows := FilterDataset(gjson.Parse(raw), Cols("name", "version"), "")

	assert.Len(t, rows, 1)
	assert.Equal(t, "wiki:start", rows[0]["name"])
	assert.Equal(t, 3.0, rows[0]["version"])
	assert.NotContains(t, rows[0], "author")
	assert.NotContains(t, rows[0], "extra")
}

func TestByteSize(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  interface{}
	}{
		{
			name:  "float bytes",
			value: 2048.0,
			want:  "2.0 kB",
		},
		{
			name:  "int bytes",
			value: 57,
			want:  "57 B",
		},
		{
			name:  "negative passes through",
			value: -1.0,
			want:  -1.0,
		},
		{
			name:  "non numeric passes through",
			value: "n/a",
			want:  "n/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ByteSize(tt.value))
		})
	}
}

func TestAge(t *testing.T) {
	recent := time.Now().Add(-2 * time.Hour).Format(time.RFC3339)
	got, ok := Age(recent).(string)
	assert.True(t, ok)
	assert.Contains(t, got, "ago")

	// Non-time values pass through untouched.
	assert.Equal(t, 42.0, Age(42.0))
	assert.Equal(t, "not a time", Age("not a time"))
}

func TestLocalTime(t *testing.T) {
	t.Setenv("TZ", "UTC")

	got := localTime("2026-08-15T10:00:00Z")
	assert.Equal(t, "2026-08-15T10:00:00UTC", got)

	// Non-time values pass through untouched.
	assert.Equal(t, 42.0, localTime(42.0))
	assert.Equal(t, "not a time", localTime("not a time"))
}

func TestSortList(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []string
	}{
		{
			name: "empty spec keeps order",
			spec: "",
			want: []string{"zebra", "alpha"},
		},
		{
			name: "ascending",
			spec: "name",
			want: []string{"alpha", "zebra"},
		},
		{
			name: "descending",
			spec: "-name",
			want: []string{"zebra", "alpha"},
		},
		{
			name: "any key name works",
			spec: "-id",
			want: []string{"zebra", "alpha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []string{"zebra", "alpha"}
			SortList(items, tt.spec)
			assert.Equal(t, tt.want, items)
		})
	}
}

func TestFilterList(t *testing.T) {
	items := []string{"alpha", "zebra", "wiki:start"}

	tests := []struct {
		name string
		spec string
		want []string
	}{
		{
			name: "empty spec keeps everything",
			spec: "",
			want: []string{"alpha", "zebra", "wiki:start"},
		},
		{
			name: "equality on the item value",
			spec: "name=alpha",
			want: []string{"alpha"},
		},
		{
			name: "negated equality",
			spec: "name!=alpha",
			want: []string{"zebra", "wiki:start"},
		},
		{
			name: "prefix",
			spec: "name^wiki:",
			want: []string{"wiki:start"},
		},
		{
			name: "contains",
			spec: "name@eb",
			want: []string{"zebra"},
		},
		{
			name: "key name is interchangeable",
			spec: "id=alpha",
			want: []string{"alpha"},
		},
		{
			name: "nothing matches",
			spec: "name=nobody",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterList(items, tt.spec))
		})
	}
}

func TestListRendering(t *testing.T) {
	var buf bytes.Buffer

	runWithFlags(t, nil, func(cmd *cli.Command) {
		List([]string{"alpha", "zebra"}, cmd, &buf)
	})
	assert.Equal(t, "alpha\nzebra\n", buf.String())

	buf.Reset()
	runWithFlags(t, []string{"--output", "json"}, func(cmd *cli.Command) {
		List([]string{"alpha", "zebra"}, cmd, &buf)
	})
	assert.Equal(t, "[\"alpha\",\"zebra\"]\n", buf.String())
}

func TestScalarRaw(t *testing.T) {
	var buf bytes.Buffer

	runWithFlags(t, []string{"--output", "raw"}, func(cmd *cli.Command) {
		Scalar("====== Start ======\n", cmd, &buf)
	})
	assert.Equal(t, "====== Start ======\n", buf.String())

	buf.Reset()
	runWithFlags(t, nil, func(cmd *cli.Command) {
		Scalar("====== Start ======", cmd, &buf)
	})
	assert.Equal(t, "====== Start ======\n", buf.String())
}

func TestMappingRaw(t *testing.T) {
	var buf bytes.Buffer
	payload := `{"wiki":"https://wiki.example.org","version":"2025-05-14"}`

	runWithFlags(t, []string{"--output", "raw"}, func(cmd *cli.Command) {
		Mapping(*bytes.NewBufferString(payload), Cols("wiki", "version"), cmd, &buf)
	})
	assert.Equal(t, payload, buf.String())
}

func TestCols(t *testing.T) {
	cols := Cols("name", "author")
	assert.Len(t, cols, 2)
	assert.Equal(t, "name", cols[0].Key)
	assert.Equal(t, "name", cols[0].Title)
	assert.Equal(t, "author", cols[1].Title)
}
