// Package align reads word-level alignment documents as produced by the
// upstream forced-alignment step.
package align

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"scenecut/segmenter"
)

// Document is one saved alignment, the segmenter's input unit.
type Document struct {
	SourceFile    string           `json:"source_file,omitempty"`
	SourceFolder  string           `json:"source_folder,omitempty"`
	Folder        string           `json:"folder,omitempty"`
	Style         string           `json:"style,omitempty"`
	AspectRatio   string           `json:"aspect_ratio,omitempty"`
	Transcript    string           `json:"transcript,omitempty"`
	Alignment     []segmenter.Word `json:"alignment"`
	WordCount     int              `json:"word_count,omitempty"`
	InferenceTime float64          `json:"inference_time,omitempty"`
	Timestamp     string           `json:"timestamp,omitempty"`
}

// Metadata extracts the segmenter pass-through metadata from the document.
func (d *Document) Metadata() segmenter.Metadata {
	source := d.SourceFolder
	if source == "" {
		source = d.Folder
	}
	return segmenter.Metadata{
		SourceFolder: source,
		Style:        d.Style,
		AspectRatio:  d.AspectRatio,
		Transcript:   d.Transcript,
	}
}

// Parse decodes alignment JSON. Both the envelope form
// {"alignment": [...], ...} and a bare word array are accepted.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil {
		return &doc, nil
	}

	var words []segmenter.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("unrecognized alignment JSON: %w", err)
	}
	return &Document{Alignment: words}, nil
}

// Load reads and parses an alignment file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alignment file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Summary is one row in an alignment history listing.
type Summary struct {
	Folder        string  `json:"folder"`
	SourceFile    string  `json:"source_file"`
	Transcript    string  `json:"transcript"`
	WordCount     int     `json:"word_count"`
	Duration      float64 `json:"duration_seconds"`
	InferenceTime float64 `json:"inference_time"`
	Timestamp     string  `json:"timestamp"`
}

// List scans dir for saved alignments (one alignment.json per subfolder)
// and returns summaries, newest first. Entries that fail to parse are
// skipped.
func List(dir string) ([]Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Summary{}, nil
		}
		return nil, err
	}

	items := []Summary{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		doc, err := Load(filepath.Join(dir, entry.Name(), "alignment.json"))
		if err != nil {
			continue
		}
		duration := 0.0
		if n := len(doc.Alignment); n > 0 {
			duration = doc.Alignment[n-1].End
		}
		wordCount := doc.WordCount
		if wordCount == 0 {
			wordCount = len(doc.Alignment)
		}
		folder := doc.Folder
		if folder == "" {
			folder = entry.Name()
		}
		items = append(items, Summary{
			Folder:        folder,
			SourceFile:    doc.SourceFile,
			Transcript:    doc.Transcript,
			WordCount:     wordCount,
			Duration:      duration,
			InferenceTime: doc.InferenceTime,
			Timestamp:     doc.Timestamp,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})
	return items, nil
}
