package server

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"scenecut/segmenter"
)

type runRequest struct {
	Alignment    []segmenter.Word    `json:"alignment"`
	Transcript   string              `json:"transcript"`
	SourceFolder string              `json:"source_folder"`
	Style        string              `json:"style"`
	AspectRatio  string              `json:"aspect_ratio"`
	Config       *segmenter.Override `json:"config"`
	Save         *bool               `json:"save"`
}

type runResponse struct {
	segmenter.Result
	OutputFolder string `json:"output_folder,omitempty"`
	OutputPath   string `json:"output_path,omitempty"`
}

func (s *Server) runSegmenter(c echo.Context) error {
	var req runRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.Alignment) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No alignment data provided")
	}

	cfg := segmenter.ResolveConfig(req.Config)
	meta := segmenter.Metadata{
		SourceFolder: req.SourceFolder,
		Style:        req.Style,
		AspectRatio:  req.AspectRatio,
		Transcript:   req.Transcript,
	}

	result := segmenter.Run(req.Alignment, cfg, meta)
	resp := runResponse{Result: result}

	save := req.Save == nil || *req.Save
	if save {
		folder, path, err := s.store.Save(&result)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		resp.OutputFolder = folder
		resp.OutputPath = path
		log.Info().
			Str("project", meta.SourceFolder).
			Int("segments", result.Stats.SegmentCount).
			Str("folder", folder).
			Msg("segmented")
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) segmenterHistory(c echo.Context) error {
	items, err := s.store.List()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) getSegmenterRun(c echo.Context) error {
	result, err := s.store.Get(c.Param("folder"))
	if err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
