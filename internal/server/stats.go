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
	metrics "github.com/rcrowley/go-metrics"

	"seehuhn.de/go/pattern"
)

// stats holds the request metrics of a Server.
type stats struct {
	png, svg metrics.Counter
	info     metrics.Counter
	errors   metrics.Counter
	render   metrics.Timer
}

func newStats(r metrics.Registry) *stats {
	return &stats{
		png:    metrics.GetOrRegisterCounter("requests.png", r),
		svg:    metrics.GetOrRegisterCounter("requests.svg", r),
		info:   metrics.GetOrRegisterCounter("requests.json", r),
		errors: metrics.GetOrRegisterCounter("errors", r),
		render: metrics.GetOrRegisterTimer("render", r),
	}
}

// requests returns the request counter for an image format.
func (s *stats) requests(f pattern.Format) metrics.Counter {
	if f == pattern.FormatSVG {
		return s.svg
	}
	return s.png
}
