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


package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	metrics "github.com/rcrowley/go-metrics"

	"seehuhn.de/go/pattern"
)

func newTestServer(buf *bytes.Buffer) *Server {
	var w io.Writer = io.Discard
	if buf != nil {
		w = buf
	}
	return New(Config{
		Logger:   slog.New(slog.NewJSONHandler(w, nil)),
		Registry: metrics.NewRegistry(),
	})
}

func get(s http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestInfo(t *testing.T) {
	s := newTestServer(nil)

	rec := get(s, "/api/hello.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type %q", ct)
	}

	var info Info
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	want := Info{
		Seed:     "hello",
		Hash:     "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		ImageURL: "/api/hello.png",
	}
	if info != want {
		t.Errorf("got %+v, want %+v", info, want)
	}
}

func TestInfoEscapedSeed(t *testing.T) {
	s := newTestServer(nil)

	rec := get(s, "/api/hello%20world.json")
	var info Info
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if info.Seed != "hello world" || info.Hash != pattern.DeriveDigest("hello world").String() {
		t.Errorf("got %+v", info)
	}
}

func TestImage(t *testing.T) {
	s := newTestServer(nil)

	cases := []struct {
		filetype string
		format   pattern.Format
	}{
		{"png", pattern.FormatPNG},
		{"svg", pattern.FormatSVG},
		{"gif", pattern.FormatPNG}, // unknown types are rendered as PNG
	}
	for _, tc := range cases {
		t.Run(tc.filetype, func(t *testing.T) {
			rec := get(s, "/api/hello."+tc.filetype)
			if rec.Code != http.StatusOK {
				t.Fatalf("status %d", rec.Code)
			}
			if ct, want := rec.Header().Get("Content-Type"), "image/"+tc.filetype; ct != want {
				t.Errorf("content type %q, want %q", ct, want)
			}

			want, err := pattern.RenderSeed("hello", tc.format)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(rec.Body.Bytes(), want) {
				t.Error("response differs from RenderSeed output")
			}
		})
	}
}

func TestImageDecodes(t *testing.T) {
	s := newTestServer(nil)

	rec := get(s, "/api/seed.png")
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != pattern.CanvasWidth || b.Dy() != pattern.CanvasHeight {
		t.Errorf("got %v", b)
	}
}

func TestRenderError(t *testing.T) {
	var logBuf bytes.Buffer
	s := newTestServer(&logBuf)
	s.render = func(w io.Writer, d *pattern.Design, f pattern.Format) error {
		w.Write([]byte("partial"))
		return errors.New("out of memory")
	}

	rec := get(s, "/api/hello.png")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type %q", ct)
	}
	if got, want := strings.TrimSpace(rec.Body.String()), `{"error":"Error generating pattern"}`; got != want {
		t.Errorf("body %q, want %q", got, want)
	}
	if !strings.Contains(logBuf.String(), "out of memory") {
		t.Errorf("error not logged:\n%s", logBuf.String())
	}
	if s.stats.errors.Count() != 1 {
		t.Errorf("error count %d", s.stats.errors.Count())
	}
}

func TestNotFound(t *testing.T) {
	s := newTestServer(nil)
	for _, target := range []string{"/api/hello", "/api/", "/hello.png"} {
		if rec := get(s, target); rec.Code != http.StatusNotFound {
			t.Errorf("%s: status %d", target, rec.Code)
		}
	}
}

func TestRequestLog(t *testing.T) {
	var logBuf bytes.Buffer
	s := newTestServer(&logBuf)
	get(s, "/api/hello.json")

	var rec struct {
		Msg       string `json:"msg"`
		Method    string `json:"method"`
		Path      string `json:"path"`
		Status    int    `json:"status"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(logBuf.Bytes(), &rec); err != nil {
		t.Fatalf("%v: %s", err, logBuf.String())
	}
	if rec.Msg != "request" || rec.Method != "GET" || rec.Path != "/api/hello.json" || rec.Status != 200 || rec.RequestID == "" {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestMetrics(t *testing.T) {
	s := newTestServer(nil)
	get(s, "/api/a.png")
	get(s, "/api/b.png")
	get(s, "/api/c.svg")
	get(s, "/api/d.json")

	if n := s.stats.png.Count(); n != 2 {
		t.Errorf("png requests: %d", n)
	}
	if n := s.stats.render.Count(); n != 3 {
		t.Errorf("render timer count: %d", n)
	}

	rec := get(s, "/debug/metrics")
	var vars map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &vars); err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]float64{
		"requests.png":  2,
		"requests.svg":  1,
		"requests.json": 1,
		"render.count":  3,
	} {
		if got, _ := vars[name].(float64); got != want {
			t.Errorf("%s = %v, want %v", name, vars[name], want)
		}
	}
}

func TestServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, ln, newTestServer(nil), logger)
	}()

	res, err := http.Get("http://" + ln.Addr().String() + "/api/hello.json")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Errorf("status %d", res.StatusCode)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Serve: %v", err)
	}
}
