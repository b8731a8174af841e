// SPDX-License-Identifier: MIT
//
// File: yaml.go
// Role: YAML encoding and decoding of edge lists.

package network

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/layover/core"
)

// Document is the on-disk shape of a network file.
type Document struct {
	Edges []Record `yaml:"edges"`
}

// Record is one edge of a Document.
type Record struct {
	From      string  `yaml:"from"`
	To        string  `yaml:"to"`
	Travel    float64 `yaml:"travel"`
	Surcharge float64 `yaml:"surcharge,omitempty"`
}

// Decode reads a YAML network document from r.
//
// Errors:
//   - ErrDecode for malformed YAML, unknown keys, wrong value types or a
//     NaN/infinite cost (wrapped with the edge index).
//   - ErrEmptyNetwork if the document has no edges.
//   - ErrMissingEndpoint (wrapped with the edge index) for a record without from/to.
func Decode(r io.Reader) ([]core.EdgeSpec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyNetwork
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(doc.Edges) == 0 {
		return nil, ErrEmptyNetwork
	}

	out := make([]core.EdgeSpec, 0, len(doc.Edges))
	for i, rec := range doc.Edges {
		if rec.From == "" || rec.To == "" {
			return nil, edgeErrorf(i, ErrMissingEndpoint)
		}
		if !finite(rec.Travel) || !finite(rec.Surcharge) {
			return nil, edgeErrorf(i, fmt.Errorf("%w: non-finite cost (travel=%v, surcharge=%v)", ErrDecode, rec.Travel, rec.Surcharge))
		}
		out = append(out, core.EdgeSpec{From: rec.From, To: rec.To, Travel: rec.Travel, Surcharge: rec.Surcharge})
	}

	return out, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// LoadFile decodes the network document at path.
func LoadFile(path string) ([]core.EdgeSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open network %s: %w", path, err)
	}
	defer f.Close()

	edges, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("network %s: %w", path, err)
	}

	return edges, nil
}

// Encode writes edges as a YAML network document to w.
func Encode(w io.Writer, edges []core.EdgeSpec) error {
	doc := Document{Edges: make([]Record, 0, len(edges))}
	for _, e := range edges {
		doc.Edges = append(doc.Edges, Record{From: e.From, To: e.To, Travel: e.Travel, Surcharge: e.Surcharge})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode network: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode network: %w", err)
	}
	_, err := w.Write(buf.Bytes())

	return err
}

// Load returns the edges of the network file at path, or Airports() when
// path is empty.
func Load(path string) ([]core.EdgeSpec, error) {
	if path == "" {
		return Airports(), nil
	}

	return LoadFile(path)
}
