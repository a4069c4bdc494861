// Package server exposes the segmenter over HTTP.
package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"scenecut/align"
	"scenecut/config"
	"scenecut/store"
)

// Server wires the HTTP routes to the store and output tree.
type Server struct {
	settings config.Settings
	store    *store.Store
}

// New builds the echo application with all routes registered.
func New(settings config.Settings, st *store.Store) *echo.Echo {
	s := &Server{settings: settings, store: st}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
		}
		if c.Response().Committed {
			return
		}
		_ = c.JSON(code, map[string]string{"error": msg})
	}

	e.Use(middleware.Recover())
	e.Use(requestLogger())

	e.GET("/api/health", s.health)
	e.POST("/api/segmenter/run", s.runSegmenter)
	e.GET("/api/segmenter/history", s.segmenterHistory)
	e.GET("/api/segmenter/:folder", s.getSegmenterRun)
	e.GET("/api/alignments", s.listAlignments)

	return e
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Debug().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("elapsed", time.Since(start)).
				Msg("request")
			return err
		}
	}
}

func (s *Server) health(c echo.Context) error {
	writable := true
	probe := filepath.Join(s.settings.SegmenterDir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		writable = false
	} else {
		_ = os.Remove(probe)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":          "ok",
		"output_writable": writable,
	})
}

func (s *Server) listAlignments(c echo.Context) error {
	items, err := align.List(s.settings.AlignDir)
	if err != nil {
		return fmt.Errorf("listing alignments: %w", err)
	}
	return c.JSON(http.StatusOK, items)
}

// FindPort returns the first free TCP port at or after start, probing up
// to 50 ports before giving up and returning start anyway.
func FindPort(start int) int {
	for p := start; p < start+50; p++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", p))
		if err != nil {
			continue
		}
		ln.Close()
		return p
	}
	return start
}
