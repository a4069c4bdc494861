// Package segmenter partitions a word-level timing alignment into timed
// segments suitable for scene-by-scene video generation. Each segment aims
// for a natural speech boundary (punctuation plus silence) inside
// configurable duration limits.
//
// The pipeline is Split -> MergeShort -> FillGaps, wrapped by Run. All four
// are pure functions over their inputs: no I/O, no shared state, safe to
// call concurrently on independent data.
package segmenter

import (
	"math"
	"strings"
	"time"
)

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Split runs the greedy scan over the alignment and emits raw speech
// segments, before short-segment merging and gap filling.
//
// The scan keeps the best-scoring break seen since the segment start and
// keeps reading past it in search of a better one; when a duration limit
// forces a cut, the boundary falls back to the recorded best break, which
// can be earlier than the word that triggered the cut.
func Split(words []Word, cfg Config) []Segment {
	if len(words) == 0 {
		return nil
	}

	var segments []Segment
	segStartIdx := 0
	segStartTime := words[0].Begin
	bestIdx := -1
	bestScore := -1

	i := 0
	for i < len(words) {
		w := words[i]
		elapsed := w.End - segStartTime

		nextGap := 0.0
		nextWord := ""
		if i+1 < len(words) {
			nextGap = words[i+1].Begin - w.End
			nextWord = words[i+1].Text
		}

		// Track the best break point once past the minimum duration.
		if elapsed >= cfg.TargetMin {
			score := BreakScore(w.Text, nextGap, nextWord)
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		shouldCut := false
		reason := ""
		switch {
		case i == len(words)-1:
			shouldCut = true
			reason = BreakEndOfText
			bestIdx = i
		case elapsed >= cfg.HardMax:
			shouldCut = true
			reason = BreakHardMax
			if bestIdx < 0 {
				bestIdx = i
			}
		case elapsed >= cfg.TargetMax && bestScore >= 3:
			shouldCut = true
			reason = BreakNaturalBreak
		case elapsed >= cfg.TargetMin && bestScore >= 8:
			shouldCut = true
			reason = BreakStrongBreak
		}

		if shouldCut && bestIdx >= 0 {
			cutIdx := bestIdx
			texts := make([]string, 0, cutIdx-segStartIdx+1)
			for j := segStartIdx; j <= cutIdx; j++ {
				texts = append(texts, words[j].Text)
			}
			segments = append(segments, Segment{
				Index:       len(segments),
				Words:       strings.Join(texts, " "),
				Start:       segStartTime,
				End:         words[cutIdx].End,
				Duration:    round3(words[cutIdx].End - segStartTime),
				WordCount:   len(texts),
				IsFiller:    false,
				BreakReason: reason,
			})

			// Restart the scan at the word after the cut point.
			nextIdx := cutIdx + 1
			if nextIdx >= len(words) {
				break
			}
			segStartIdx = nextIdx
			segStartTime = words[nextIdx].Begin
			bestIdx = -1
			bestScore = -1
			i = nextIdx
			continue
		}

		i++
	}

	return segments
}

// MergeShort folds speech segments shorter than hard_min into the previous
// accepted speech segment. A short first segment has nothing to merge into
// and is kept as-is; fillers pass through untouched. Indexes are rewritten
// afterwards.
func MergeShort(segments []Segment, cfg Config) []Segment {
	if len(segments) <= 1 {
		return segments
	}

	merged := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if seg.IsFiller {
			merged = append(merged, seg)
			continue
		}

		if seg.Duration < cfg.HardMin && len(merged) > 0 {
			prev := &merged[len(merged)-1]
			if !prev.IsFiller {
				prev.Words += " " + seg.Words
				prev.End = seg.End
				prev.Duration = round3(prev.End - prev.Start)
				prev.WordCount += seg.WordCount
				prev.BreakReason = seg.BreakReason
				continue
			}
		}

		merged = append(merged, seg)
	}

	for i := range merged {
		merged[i].Index = i
	}
	return merged
}

// FillGaps inserts silence filler segments wherever the gap between
// consecutive segments reaches the gap_filler threshold, then rewrites
// indexes. Gaps are measured against the last segment actually written,
// so fillers never stack.
func FillGaps(segments []Segment, cfg Config) []Segment {
	if len(segments) == 0 {
		return segments
	}

	filled := make([]Segment, 0, len(segments))
	for i, seg := range segments {
		if i > 0 {
			prevEnd := filled[len(filled)-1].End
			gap := seg.Start - prevEnd
			if gap >= cfg.GapFiller {
				filled = append(filled, Segment{
					Words:       "",
					Start:       prevEnd,
					End:         seg.Start,
					Duration:    round3(gap),
					WordCount:   0,
					IsFiller:    true,
					BreakReason: BreakSilence,
				})
			}
		}
		filled = append(filled, seg)
	}

	for i := range filled {
		filled[i].Index = i
	}
	return filled
}

// Run executes the full pipeline and assembles the result envelope with
// aggregate stats. The metadata is passed through with the overall duration
// and a generation timestamp filled in.
func Run(words []Word, cfg Config, meta Metadata) Result {
	final := FillGaps(MergeShort(Split(words, cfg), cfg), cfg)
	if final == nil {
		final = []Segment{}
	}

	var stats Stats
	var durations []float64
	for _, s := range final {
		if s.IsFiller {
			stats.FillerCount++
		} else {
			stats.SegmentCount++
			durations = append(durations, s.Duration)
		}
	}
	stats.TotalCount = len(final)

	// Guard the empty case so the averages stay zero instead of dividing
	// by zero.
	if len(durations) == 0 {
		durations = []float64{0}
	}
	sum, minD, maxD := 0.0, durations[0], durations[0]
	for _, d := range durations {
		sum += d
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}
	stats.AvgDuration = round3(sum / float64(len(durations)))
	stats.MinDuration = round3(minD)
	stats.MaxDuration = round3(maxD)

	totalDuration := 0.0
	if len(final) > 0 {
		totalDuration = final[len(final)-1].End - final[0].Start
	}
	meta.TotalDuration = round3(totalDuration)
	meta.SegmentedAt = time.Now().Format(time.RFC3339)

	return Result{
		Metadata: meta,
		Config:   cfg,
		Segments: final,
		Stats:    stats,
	}
}
