// seehuhn.de/go/pattern - deterministic seed patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package server exposes pattern rendering over HTTP.
//
// Routes:
//
//	GET /api/{seed}.json      seed, digest and image URL
//	GET /api/{seed}.{type}    the rendered image, SVG for "svg" and PNG otherwise
//	GET /debug/metrics        request metrics as JSON
package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	metrics "github.com/rcrowley/go-metrics"
	"github.com/rcrowley/go-metrics/exp"

	"seehuhn.de/go/pattern"
)

// DefaultTimeout bounds the time spent on a single request.
const DefaultTimeout = 10 * time.Second

// Config holds the settings of a Server.
// Zero values select the defaults.
type Config struct {
	Logger   *slog.Logger     // defaults to slog.Default()
	Registry metrics.Registry // defaults to a fresh registry
	Timeout  time.Duration    // defaults to DefaultTimeout
}

// Server is the HTTP handler of the pattern service.
type Server struct {
	logger *slog.Logger
	stats  *stats
	router chi.Router

	// render is replaced in tests
	render func(w io.Writer, d *pattern.Design, f pattern.Format) error
}

// New builds the router and its middleware stack.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = metrics.NewRegistry()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	s := &Server{
		logger: cfg.Logger,
		stats:  newStats(cfg.Registry),
		render: pattern.Render,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Timeout))

	r.Get("/api/{seed}.{filetype}", s.handlePattern)
	r.Method(http.MethodGet, "/debug/metrics", exp.ExpHandler(cfg.Registry))
	s.router = r

	return s
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Info is the response of the JSON endpoint.
type Info struct {
	Seed     string `json:"seed"`
	Hash     string `json:"hash"`
	ImageURL string `json:"imageUrl"`
}

func (s *Server) handlePattern(w http.ResponseWriter, r *http.Request) {
	seed := urlParam(r, "seed")
	filetype := urlParam(r, "filetype")

	if filetype == "json" {
		s.stats.info.Inc(1)
		jsonResponse(w, http.StatusOK, Info{
			Seed:     seed,
			Hash:     pattern.DeriveDigest(seed).String(),
			ImageURL: "/api/" + seed + ".png",
		})
		return
	}

	ctx := r.Context()
	f := pattern.FormatFromExt(filetype)
	s.stats.requests(f).Inc(1)

	start := time.Now()
	d := pattern.NewDesign(pattern.DeriveDigest(seed))
	d.LogShapes(ctx, s.logger)

	// The image is complete before the first byte goes out, so that a
	// failure never leaves a truncated image behind.
	var buf bytes.Buffer
	if err := s.render(&buf, d, f); err != nil {
		s.stats.errors.Inc(1)
		s.logger.ErrorContext(ctx, "error generating pattern",
			slog.String("seed", seed),
			slog.String("format", f.String()),
			slog.Any("error", err))
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: "Error generating pattern"})
		return
	}
	s.stats.render.UpdateSince(start)

	if ctx.Err() != nil {
		// the timeout middleware answers
		return
	}

	w.Header().Set("Content-Type", "image/"+filetype)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// urlParam returns the decoded value of a route parameter.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
