// Package host hands finished import requests to a terrain host. The file
// exporter stands in for an in-engine import API: it persists the elevation
// grid and its geometry so an external world builder can pick them up.
package host

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/landforge/pkg/landscape"
)

// Export errors.
var (
	ErrNoField       = errors.New("host: import request has no height field")
	ErrTruncatedGrid = errors.New("host: elevation grid shorter than sidecar edge")
)

// Metadata is the YAML sidecar written next to the raw elevation grid.
type Metadata struct {
	Edge            int     `yaml:"edge"`
	ComponentQuads  int     `yaml:"component_quads"`
	SubsectionQuads int     `yaml:"subsection_quads"`
	NumSubsections  int     `yaml:"num_subsections"`
	GridSide        int     `yaml:"grid_side"`
	RequestedBlocks int     `yaml:"requested_blocks"`
	HorizontalScale float64 `yaml:"horizontal_scale"`
	VerticalScale   float64 `yaml:"vertical_scale"`
}

// RawExporter writes import requests to disk as <name>.r16 (little-endian
// row-major uint16 elevations) plus a <name>.yaml geometry sidecar.
type RawExporter struct {
	Dir  string
	Name string
}

// Import implements landscape.Importer.
func (e *RawExporter) Import(req *landscape.ImportRequest) error {
	if req == nil || req.Field == nil {
		return ErrNoField
	}

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	name := e.Name
	if name == "" {
		name = "landscape"
	}

	buf := new(bytes.Buffer)
	buf.Grow(len(req.Field.Elevations) * 2)
	if err := binary.Write(buf, binary.LittleEndian, req.Field.Elevations); err != nil {
		return fmt.Errorf("encoding elevation grid: %w", err)
	}

	rawPath := filepath.Join(e.Dir, name+".r16")
	if err := os.WriteFile(rawPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing elevation grid: %w", err)
	}

	meta := Metadata{
		Edge:            req.Field.Edge,
		ComponentQuads:  req.Geometry.ComponentQuads,
		SubsectionQuads: req.Geometry.SubsectionQuads,
		NumSubsections:  req.Geometry.NumSubsections,
		GridSide:        req.Geometry.GridSide,
		RequestedBlocks: req.Geometry.RequestedBlocks,
		HorizontalScale: req.Geometry.HorizontalScale,
		VerticalScale:   req.Geometry.VerticalScale,
	}

	data, err := yaml.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("encoding geometry sidecar: %w", err)
	}

	metaPath := filepath.Join(e.Dir, name+".yaml")
	if err := os.WriteFile(metaPath, data, 0644); err != nil {
		return fmt.Errorf("writing geometry sidecar: %w", err)
	}

	return nil
}

// LoadRawField reads an exported elevation grid and its sidecar back.
func LoadRawField(dir, name string) (*landscape.HeightField, Metadata, error) {
	var meta Metadata

	metaData, err := os.ReadFile(filepath.Join(dir, name+".yaml"))
	if err != nil {
		return nil, meta, fmt.Errorf("reading geometry sidecar: %w", err)
	}
	if err := yaml.Unmarshal(metaData, &meta); err != nil {
		return nil, meta, fmt.Errorf("parsing geometry sidecar: %w", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, name+".r16"))
	if err != nil {
		return nil, meta, fmt.Errorf("reading elevation grid: %w", err)
	}

	cells := meta.Edge * meta.Edge
	if len(raw) < cells*2 {
		return nil, meta, fmt.Errorf("%w: have %d bytes, want %d", ErrTruncatedGrid, len(raw), cells*2)
	}

	field := &landscape.HeightField{
		Edge:       meta.Edge,
		Elevations: make([]uint16, cells),
	}
	for i := 0; i < cells; i++ {
		field.Elevations[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}

	return field, meta, nil
}
