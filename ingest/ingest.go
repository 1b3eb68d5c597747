// SPDX-License-Identifier: MIT

// Package ingest loads core.Graph values from JSON documents and CSV edge
// lists.
//
// Loaders build graphs only through AddNode and AddEdge, so GraphOptions
// (factories, spacing, layout, logger) passed by the caller apply unchanged.
// Edges may name nodes that were not declared; they are created with
// default configuration.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/semgraph/core"
)

var (
	// ErrUnsupportedFormat is returned for an unknown format name or file extension.
	ErrUnsupportedFormat = errors.New("ingest: unsupported format")
	// ErrMalformed is returned for input that decodes but does not describe a graph.
	ErrMalformed = errors.New("ingest: malformed input")
)

// Loader decodes one input format into a graph.
type Loader interface {
	// Load reads r into a new graph built with opts.
	Load(r io.Reader, opts ...core.GraphOption) (*core.Graph, error)
	// Name returns the format name.
	Name() string
}

// ForFormat returns the loader for "json" or "csv" (case-insensitive).
//
// Errors: ErrUnsupportedFormat.
func ForFormat(format string) (Loader, error) {
	switch strings.ToLower(format) {
	case "json":
		return JSONLoader{}, nil
	case "csv":
		return CSVLoader{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// LoadFile picks a loader by file extension and reads path.
//
// Errors: ErrUnsupportedFormat; open errors; loader errors wrapped with the path.
func LoadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	loader, err := ForFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := loader.Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
