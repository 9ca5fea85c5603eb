package host

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/landforge/pkg/landscape"
)

func testRequest(t *testing.T, edge int) *landscape.ImportRequest {
	t.Helper()

	field := &landscape.HeightField{
		Edge:       edge,
		Elevations: make([]uint16, edge*edge),
	}
	for i := range field.Elevations {
		field.Elevations[i] = uint16(i * 3)
	}

	return &landscape.ImportRequest{
		Field:    field,
		Geometry: landscape.PlanGeometry(edge, 4, landscape.DefaultBlockSize, landscape.DefaultVerticalScale),
	}
}

func TestRawExporter_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	req := testRequest(t, 8)

	exporter := &RawExporter{Dir: dir, Name: "test"}
	if err := exporter.Import(req); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	// Raw grid is exactly edge*edge little-endian uint16s.
	info, err := os.Stat(filepath.Join(dir, "test.r16"))
	if err != nil {
		t.Fatalf("stat raw grid: %v", err)
	}
	if info.Size() != 8*8*2 {
		t.Errorf("expected %d byte grid, got %d", 8*8*2, info.Size())
	}

	field, meta, err := LoadRawField(dir, "test")
	if err != nil {
		t.Fatalf("LoadRawField failed: %v", err)
	}

	if field.Edge != 8 {
		t.Errorf("expected edge 8, got %d", field.Edge)
	}
	for i, v := range req.Field.Elevations {
		if field.Elevations[i] != v {
			t.Fatalf("cell %d = %d, expected %d", i, field.Elevations[i], v)
		}
	}

	if meta.ComponentQuads != req.Geometry.ComponentQuads {
		t.Errorf("expected %d component quads, got %d", req.Geometry.ComponentQuads, meta.ComponentQuads)
	}
	if meta.HorizontalScale != req.Geometry.HorizontalScale {
		t.Errorf("expected horizontal scale %f, got %f", req.Geometry.HorizontalScale, meta.HorizontalScale)
	}
	if meta.VerticalScale != req.Geometry.VerticalScale {
		t.Errorf("expected vertical scale %f, got %f", req.Geometry.VerticalScale, meta.VerticalScale)
	}
	if meta.GridSide != 2 || meta.RequestedBlocks != 4 {
		t.Errorf("expected grid side 2 of 4 requested blocks, got %d of %d", meta.GridSide, meta.RequestedBlocks)
	}
}

func TestRawExporter_DefaultName(t *testing.T) {
	dir := t.TempDir()

	exporter := &RawExporter{Dir: dir}
	if err := exporter.Import(testRequest(t, 2)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "landscape.r16")); err != nil {
		t.Errorf("expected default landscape.r16, stat failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "landscape.yaml")); err != nil {
		t.Errorf("expected default landscape.yaml, stat failed: %v", err)
	}
}

func TestRawExporter_NoField(t *testing.T) {
	exporter := &RawExporter{Dir: t.TempDir()}

	if err := exporter.Import(nil); !errors.Is(err, ErrNoField) {
		t.Errorf("nil request: expected ErrNoField, got %v", err)
	}
	if err := exporter.Import(&landscape.ImportRequest{}); !errors.Is(err, ErrNoField) {
		t.Errorf("nil field: expected ErrNoField, got %v", err)
	}
}

func TestLoadRawField_TruncatedGrid(t *testing.T) {
	dir := t.TempDir()

	exporter := &RawExporter{Dir: dir, Name: "broken"}
	if err := exporter.Import(testRequest(t, 4)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	// Chop the raw grid below edge*edge cells.
	rawPath := filepath.Join(dir, "broken.r16")
	if err := os.WriteFile(rawPath, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatalf("truncating grid: %v", err)
	}

	_, _, err := LoadRawField(dir, "broken")
	if !errors.Is(err, ErrTruncatedGrid) {
		t.Errorf("expected ErrTruncatedGrid, got %v", err)
	}
}

func TestLoadRawField_MissingSidecar(t *testing.T) {
	_, _, err := LoadRawField(t.TempDir(), "nothing")
	if err == nil {
		t.Error("expected error for missing sidecar")
	}
}
