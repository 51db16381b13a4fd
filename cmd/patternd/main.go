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


// Command patternd serves identicon-style patterns over HTTP.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	metrics "github.com/rcrowley/go-metrics"
	"github.com/urfave/cli/v2"

	"seehuhn.de/go/pattern/internal/server"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		switch value := err.(type) {
		case cli.ExitCoder:
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(value.ExitCode())
		default:
			fmt.Fprintln(os.Stderr, value.Error())
			os.Exit(1)
		}
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "patternd"
	app.Usage = "serve deterministic patterns derived from text seeds"
	app.HideHelpCommand = true
	app.HideVersion = true

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "port",
			Value:   3000,
			Usage:   "TCP port to listen on",
			EnvVars: []string{"PORT"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "minimum log level (debug, info, warn, error)",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Value:   server.DefaultTimeout,
			Usage:   "time limit for a single request",
			EnvVars: []string{"REQUEST_TIMEOUT"},
		},
	}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.String("log-level"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	slog.SetDefault(logger)

	handler := server.New(server.Config{
		Logger:   logger,
		Registry: metrics.DefaultRegistry,
		Timeout:  c.Duration("timeout"),
	})

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + strconv.Itoa(c.Int("port"))
	if err := server.ListenAndServe(ctx, addr, handler, logger); err != nil {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}

// newLogger returns a JSON logger writing to stderr.
func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	return slog.New(h), nil
}
