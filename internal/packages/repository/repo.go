package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PackageRepository reads the static pricing document. The table is a
// free-form JSON object keyed by city slug; its per-city shape is owned
// by whoever curates packages.json, not by this service.
type PackageRepository struct {
	path string
}

func NewPackageRepository(dataDir string) *PackageRepository {
	return &PackageRepository{path: filepath.Join(dataDir, "packages.json")}
}

// Table returns the full pricing document. Unlike the mutable
// collections, a missing or corrupt document is an error: it is
// reference data with no sensible empty fallback.
func (r *PackageRepository) Table() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read packages document: %w", err)
	}
	var table map[string]json.RawMessage
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse packages document: %w", err)
	}
	return table, nil
}
