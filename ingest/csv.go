// SPDX-License-Identifier: MIT

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/semgraph/core"
)

// Column aliases recognized in a CSV header row.
var (
	sourceColumns = []string{"source", "from", "src"}
	targetColumns = []string{"target", "to", "dst"}
	weightColumns = []string{"weight", "value", "strength"}
	typeColumns   = []string{"type", "relation"}
)

// CSVLoader reads edge lists, one edge per record.
//
// When the first record names a source and a target column (see the alias
// lists), it is a header and columns are matched by name; weight and type
// columns are optional. Otherwise records are positional: source, target and
// an optional weight. Blank lines and lines starting with '#' are skipped.
type CSVLoader struct{}

// Name returns "csv".
func (CSVLoader) Name() string { return "csv" }

type csvColumns struct {
	source, target, weight, typ int
}

// Load reads the edge list in r.
//
// Errors: ErrMalformed for short records, unparsable weights or invalid edges.
func (CSVLoader) Load(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	g := core.NewGraph(opts...)
	cols := csvColumns{source: 0, target: 1, weight: 2, typ: -1}
	for n := 1; ; n++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if n == 1 {
			if hdr, ok := headerColumns(rec); ok {
				cols = hdr
				continue
			}
		}
		if err = addRecord(g, cols, rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformed, n, err)
		}
	}

	return g, nil
}

func headerColumns(rec []string) (csvColumns, bool) {
	cols := csvColumns{source: -1, target: -1, weight: -1, typ: -1}
	for i, name := range rec {
		name = strings.ToLower(strings.TrimSpace(name))
		switch {
		case slices.Contains(sourceColumns, name):
			cols.source = i
		case slices.Contains(targetColumns, name):
			cols.target = i
		case slices.Contains(weightColumns, name):
			cols.weight = i
		case slices.Contains(typeColumns, name):
			cols.typ = i
		}
	}

	return cols, cols.source >= 0 && cols.target >= 0
}

func addRecord(g *core.Graph, cols csvColumns, rec []string) error {
	if cols.source >= len(rec) || cols.target >= len(rec) {
		return fmt.Errorf("need source and target, got %d fields", len(rec))
	}
	opts := make([]core.EdgeOption, 0, 2)
	if v := field(rec, cols.weight); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("weight %q: %w", v, err)
		}
		opts = append(opts, core.WithWeight(w))
	}
	if v := field(rec, cols.typ); v != "" {
		opts = append(opts, core.WithType(v))
	}
	_, err := g.AddEdge(strings.TrimSpace(rec[cols.source]), strings.TrimSpace(rec[cols.target]), opts...)

	return err
}

// field returns the trimmed value at i, or "" when the column is absent.
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[i])
}
