package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"scenecut/align"
	"scenecut/config"
	"scenecut/segmenter"
	"scenecut/store"
)

var (
	segTargetMin  float64
	segTargetMax  float64
	segHardMax    float64
	segHardMin    float64
	segGapFiller  float64
	segOutput     string
	segConfigFile string
)

var segmentCmd = &cobra.Command{
	Use:   "segment [alignment.json]",
	Short: "Run the segmenter on an alignment file",
	Long: `Run the segmenter on a word-level alignment JSON file and save the
result. The input is either the alignment envelope written by the alignment
step or a bare array of {word, begin, end} objects.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := align.Load(args[0])
		if err != nil {
			return err
		}

		cfg, err := config.LoadSegmenterDefaults(segConfigFile)
		if err != nil {
			return err
		}
		applyFlag := func(name string, dst *float64, v float64) {
			if cmd.Flags().Changed(name) {
				*dst = v
			}
		}
		applyFlag("target-min", &cfg.TargetMin, segTargetMin)
		applyFlag("target-max", &cfg.TargetMax, segTargetMax)
		applyFlag("hard-max", &cfg.HardMax, segHardMax)
		applyFlag("hard-min", &cfg.HardMin, segHardMin)
		applyFlag("gap-filler", &cfg.GapFiller, segGapFiller)

		result := segmenter.Run(doc.Alignment, cfg, doc.Metadata())

		var outPath string
		if segOutput != "" {
			outPath = segOutput
			if err := writeResult(&result, outPath); err != nil {
				return err
			}
		} else {
			settings := config.Load()
			if err := settings.EnsureDirs(); err != nil {
				return err
			}
			st := store.New(settings.SegmenterDir)
			_, outPath, err = st.Save(&result)
			if err != nil {
				return err
			}
		}

		fmt.Printf("  Saved: %s\n", outPath)
		printSummary(&result)
		return nil
	},
}

func writeResult(result *segmenter.Result, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printSummary(result *segmenter.Result) {
	stats := result.Stats
	fmt.Println()
	fmt.Printf("  Segments: %d  |  Fillers: %d  |  Total: %d\n",
		stats.SegmentCount, stats.FillerCount, stats.TotalCount)
	fmt.Printf("  Duration: %.1fs  |  Avg: %.2fs  |  Range: %.2fs - %.2fs\n",
		result.Metadata.TotalDuration, stats.AvgDuration, stats.MinDuration, stats.MaxDuration)
	fmt.Println()
	for _, s := range result.Segments {
		tag := fmt.Sprintf("seg %2d", s.Index)
		if s.IsFiller {
			tag = "SILENCE"
		}
		words := s.Words
		if len(words) > 60 {
			words = words[:60] + "..."
		}
		fmt.Printf("  [%s] %6.2f - %6.2f  (%5.2fs)  %-14s  %s\n",
			tag, s.Start, s.End, s.Duration, s.BreakReason, words)
	}
	fmt.Println()
}

func init() {
	defaults := segmenter.DefaultConfig()
	segmentCmd.Flags().Float64Var(&segTargetMin, "target-min", defaults.TargetMin, "preferred minimum segment duration in seconds")
	segmentCmd.Flags().Float64Var(&segTargetMax, "target-max", defaults.TargetMax, "preferred maximum segment duration in seconds")
	segmentCmd.Flags().Float64Var(&segHardMax, "hard-max", defaults.HardMax, "absolute maximum segment duration in seconds")
	segmentCmd.Flags().Float64Var(&segHardMin, "hard-min", defaults.HardMin, "minimum segment duration enforced by merging")
	segmentCmd.Flags().Float64Var(&segGapFiller, "gap-filler", defaults.GapFiller, "minimum silence gap to fill with a silence segment")
	segmentCmd.Flags().StringVarP(&segOutput, "output", "o", "", "output path (default: auto-generated under the segmenter directory)")
	segmentCmd.Flags().StringVar(&segConfigFile, "config", "", "YAML file with segmenter defaults")
}
