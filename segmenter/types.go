package segmenter

// Word is a single aligned word with its timing in the source audio.
type Word struct {
	Text  string  `json:"word"`
	Begin float64 `json:"begin"`
	End   float64 `json:"end"`
}

// Break reasons recorded on emitted segments.
const (
	BreakEndOfText    = "end_of_text"
	BreakHardMax      = "hard_max"
	BreakNaturalBreak = "natural_break"
	BreakStrongBreak  = "strong_break"
	BreakSilence      = "silence"
)

// Segment is one display-ready slice of the narration timeline. Filler
// segments stand in for silence between speech and carry no words.
type Segment struct {
	Index       int     `json:"index"`
	Words       string  `json:"words"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Duration    float64 `json:"duration"`
	WordCount   int     `json:"word_count"`
	IsFiller    bool    `json:"is_filler"`
	BreakReason string  `json:"break_reason"`
}

// Metadata is caller-supplied context passed through into the result envelope.
type Metadata struct {
	SourceFolder  string  `json:"source_folder"`
	Style         string  `json:"style"`
	AspectRatio   string  `json:"aspect_ratio"`
	Transcript    string  `json:"transcript"`
	TotalDuration float64 `json:"total_duration"`
	SegmentedAt   string  `json:"segmented_at"`
}

// Stats summarizes the speech segments of a run. Averages and extremes are
// computed over non-filler segments only.
type Stats struct {
	SegmentCount int     `json:"segment_count"`
	FillerCount  int     `json:"filler_count"`
	TotalCount   int     `json:"total_count"`
	AvgDuration  float64 `json:"avg_duration"`
	MinDuration  float64 `json:"min_duration"`
	MaxDuration  float64 `json:"max_duration"`
}

// Result is the full segmenter output envelope.
type Result struct {
	Metadata Metadata  `json:"metadata"`
	Config   Config    `json:"config"`
	Segments []Segment `json:"segments"`
	Stats    Stats     `json:"stats"`
}
