// SPDX-License-Identifier: MIT
//
// File: yaml.go
// Role: YAML encoding and decoding of core.Graph documents.
// Policy:
//   - Encode is deterministic: vertices by key, edges once each with a < b.
//   - Decode builds through the strict Try* surface and stops at the first bad
//     entry, naming its position. A partially built graph is never returned.

// Package graphio reads and writes graphs as YAML documents:
//
//	vertices:
//	  - key: 1
//	    info: depot
//	  - key: 2
//	    tag: 0.5
//	edges:
//	  - {a: 1, b: 2, weight: 3.5}
//
// The format is a debugging and fixture aid, not a stable interchange format.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/core"
)

// ErrDuplicateEdge indicates the same vertex pair appears twice in a document.
var ErrDuplicateEdge = errors.New("graphio: duplicate edge")

// Document is the on-disk shape of a graph.
type Document struct {
	Vertices []VertexEntry `yaml:"vertices"`
	Edges    []EdgeEntry   `yaml:"edges"`
}

// VertexEntry is one vertex record.
type VertexEntry struct {
	Key  int     `yaml:"key"`
	Info string  `yaml:"info,omitempty"`
	Tag  float64 `yaml:"tag,omitempty"`
}

// EdgeEntry is one undirected edge.
type EdgeEntry struct {
	A      int     `yaml:"a"`
	B      int     `yaml:"b"`
	Weight float64 `yaml:"weight"`
}

// ToDocument snapshots g into its document form.
func ToDocument(g *core.Graph) Document {
	vs := g.Vertices()
	es := g.Edges()
	doc := Document{
		Vertices: make([]VertexEntry, len(vs)),
		Edges:    make([]EdgeEntry, len(es)),
	}
	for i, v := range vs {
		doc.Vertices[i] = VertexEntry{Key: v.Key(), Info: v.Info(), Tag: v.Tag()}
	}
	for i, e := range es {
		doc.Edges[i] = EdgeEntry{A: e.A, B: e.B, Weight: e.Weight}
	}

	return doc
}

// FromDocument builds a graph from doc.
func FromDocument(doc Document, opts ...core.GraphOption) (*core.Graph, error) {
	opts = append([]core.GraphOption{core.WithCapacity(len(doc.Vertices))}, opts...)
	g := core.NewGraph(opts...)
	for i, ve := range doc.Vertices {
		if err := g.TryAddVertex(ve.Key); err != nil {
			return nil, fmt.Errorf("graphio: vertices[%d] key=%d: %w", i, ve.Key, err)
		}
		g.SetInfo(ve.Key, ve.Info)
		g.SetTag(ve.Key, ve.Tag)
	}
	for i, ee := range doc.Edges {
		if g.HasEdge(ee.A, ee.B) {
			return nil, fmt.Errorf("graphio: edges[%d] %d-%d: %w", i, ee.A, ee.B, ErrDuplicateEdge)
		}
		if err := g.TryConnect(ee.A, ee.B, ee.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edges[%d] %d-%d: %w", i, ee.A, ee.B, err)
		}
	}

	return g, nil
}

// Encode writes g to w as YAML.
func Encode(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToDocument(g)); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// Decode reads one YAML document from r. Unknown fields are rejected.
// An empty input yields an empty graph.
func Decode(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	return FromDocument(doc, opts...)
}

// WriteFile encodes g into path, replacing any existing file.
func WriteFile(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("graphio: %w", cerr)
		}
	}()

	return Encode(f, g)
}

// ReadFile decodes the graph stored at path.
func ReadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Decode(f, opts...)
}
