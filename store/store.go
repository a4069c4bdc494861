// Package store persists segmenter results under the output tree, one
// folder per run with a segmented.json inside.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"scenecut/segmenter"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Store reads and writes segmenter runs in a single directory.
type Store struct {
	Dir string
}

func New(dir string) *Store {
	return &Store{Dir: dir}
}

// FolderName builds the run folder name from the project identifier and a
// timestamp. An empty project falls back to an untitled name with a short
// unique suffix so same-second runs cannot collide.
func FolderName(project string, now time.Time) string {
	name := strings.Trim(unsafeChars.ReplaceAllString(project, "-"), "-")
	if name == "" {
		name = "untitled-" + uuid.NewString()[:8]
	}
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%s", name, now.Format("20060102_150405"))
}

// Save writes the result to <dir>/<folder>/segmented.json and returns the
// folder name and file path.
func (s *Store) Save(result *segmenter.Result) (string, string, error) {
	folder := FolderName(result.Metadata.SourceFolder, time.Now())
	jobDir := filepath.Join(s.Dir, folder)
	if err := os.MkdirAll(jobDir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating run folder: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encoding result: %w", err)
	}
	path := filepath.Join(jobDir, "segmented.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", "", fmt.Errorf("writing %s: %w", path, err)
	}
	return folder, path, nil
}

// RunSummary is one row in a saved-run listing.
type RunSummary struct {
	Folder        string  `json:"folder"`
	SourceFolder  string  `json:"source_folder"`
	TotalDuration float64 `json:"total_duration"`
	SegmentedAt   string  `json:"segmented_at"`
	SegmentCount  int     `json:"segment_count"`
	FillerCount   int     `json:"filler_count"`
	AvgDuration   float64 `json:"avg_duration"`
}

// List returns summaries for all saved runs, newest first. Folders without
// a readable segmented.json are skipped.
func (s *Store) List() ([]RunSummary, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunSummary{}, nil
		}
		return nil, err
	}

	items := []RunSummary{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		result, err := s.Get(entry.Name())
		if err != nil {
			continue
		}
		items = append(items, RunSummary{
			Folder:        entry.Name(),
			SourceFolder:  result.Metadata.SourceFolder,
			TotalDuration: result.Metadata.TotalDuration,
			SegmentedAt:   result.Metadata.SegmentedAt,
			SegmentCount:  result.Stats.SegmentCount,
			FillerCount:   result.Stats.FillerCount,
			AvgDuration:   result.Stats.AvgDuration,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].SegmentedAt > items[j].SegmentedAt
	})
	return items, nil
}

// Get loads one saved run. The folder name is reduced to its base so a
// crafted path cannot escape the store directory.
func (s *Store) Get(folder string) (*segmenter.Result, error) {
	folder = filepath.Base(folder)
	path := filepath.Join(s.Dir, folder, "segmented.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var result segmenter.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &result, nil
}
