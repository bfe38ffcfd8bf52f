package config

import (
	"os"
	"path/filepath"
	"testing"

	wfst "github.com/beetlebugorg/wfst/pkg/v1"
)

const sampleConfig = `ns: tiger
layer: poi
srsName: EPSG:4326
geometryName: geom
coordinateOrder: yx
nsAssignments:
  tiger: http://www.census.gov/tiger
schemaLocations:
  http://www.census.gov/tiger: http://example.com/tiger.xsd
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("could not write config: %v", err)
	}
	return path
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	if cfg.Ns != "tiger" || cfg.Layer != "poi" {
		t.Errorf("Unexpected decode: %+v", cfg)
	}
	if cfg.NsAssignments["tiger"] != "http://www.census.gov/tiger" {
		t.Errorf("Expected nsAssignments decoded, got %v", cfg.NsAssignments)
	}
}

func TestTransactionOptions(t *testing.T) {
	cfg, err := NewConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	opts, err := cfg.TransactionOptions()
	if err != nil {
		t.Fatalf("TransactionOptions failed: %v", err)
	}
	if opts.CoordinateOrder != wfst.CoordinateOrderYX {
		t.Errorf("Expected yx coordinate order, got %v", opts.CoordinateOrder)
	}
	if opts.GeometryName != "geom" {
		t.Errorf("Expected geometryName geom, got %s", opts.GeometryName)
	}
}

func TestTransactionOptionsInvalidOrder(t *testing.T) {
	cfg := &Config{CoordinateOrder: "northing-first"}
	if _, err := cfg.TransactionOptions(); err == nil {
		t.Error("Expected invalid coordinateOrder to fail")
	}
}

func TestNewConfigMissingFile(t *testing.T) {
	if _, err := NewConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected missing file to fail")
	}
}
