package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"scenecut/config"
	"scenecut/store"
)

var historyOutputDir string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved segmenter runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Load()
		if historyOutputDir != "" {
			settings = config.FromOutputDir(historyOutputDir)
		}

		items, err := store.New(settings.SegmenterDir).List()
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No saved runs")
			return nil
		}

		for _, item := range items {
			fmt.Printf("  %-40s  %3d segments  %2d fillers  avg %.2fs  %s\n",
				item.Folder, item.SegmentCount, item.FillerCount, item.AvgDuration, item.SegmentedAt)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyOutputDir, "output-dir", "", "root output directory (default: $SCENECUT_OUTPUT_DIR or ./output)")
}
