package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"scenecut/config"
	"scenecut/server"
	"scenecut/store"
)

var (
	servePort      int
	serveOutputDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the segmenter HTTP API",
	Long: `Start the HTTP API exposing the segmenter, saved-run history and
alignment listing. With no --port the first free port from 5050 upward is
used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Load()
		if serveOutputDir != "" {
			settings = config.FromOutputDir(serveOutputDir)
		}
		if err := settings.EnsureDirs(); err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = server.FindPort(5050)
		}

		st := store.New(settings.SegmenterDir)
		e := server.New(settings, st)

		log.Info().
			Int("port", port).
			Str("output", settings.OutputDir).
			Msg("scenecut studio listening")
		return e.Start(fmt.Sprintf(":%d", port))
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (default: first free port from 5050)")
	serveCmd.Flags().StringVar(&serveOutputDir, "output-dir", "", "root output directory (default: $SCENECUT_OUTPUT_DIR or ./output)")
}
