package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ManifestFile is the manifest name inside the output directory.
const ManifestFile = "abbr-manifest.json"

// PageRecord describes one rendered page.
type PageRecord struct {
	Source      string `json:"source"`
	Output      string `json:"output"`
	ContentHash string `json:"content_hash"`
	Markers     int    `json:"markers"`
}

// Manifest summarises a build: which abbreviations were available and how
// many markers each page received.
type Manifest struct {
	BuildID       string       `json:"build_id"`
	ProjectName   string       `json:"project_name"`
	GeneratedAt   time.Time    `json:"generated_at"`
	Abbreviations []string     `json:"abbreviations"`
	Pages         []PageRecord `json:"pages"`
	TotalMarkers  int          `json:"total_markers"`
}

func newManifest(projectName string) *Manifest {
	return &Manifest{
		BuildID:       uuid.New().String(),
		ProjectName:   projectName,
		GeneratedAt:   time.Now().UTC(),
		Abbreviations: []string{},
	}
}

func (m *Manifest) add(rec PageRecord) {
	m.Pages = append(m.Pages, rec)
	m.TotalMarkers += rec.Markers
}

// Write stores the manifest as JSON in dir.
func (m *Manifest) Write(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the manifest written by a previous build.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
