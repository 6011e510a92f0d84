// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/frontdesk"
	"github.com/poiesic/frontdesk/answer"
	"github.com/poiesic/frontdesk/config"
	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/feed"
	"github.com/poiesic/frontdesk/server"
)

const configKey = "config"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "frontdesk",
		Usage: "Answer questions about treatment centers, jobs and FAQs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error); overrides the config file",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
				EnvVars: []string{"FRONTDESK_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load environment variables from this file",
				Value: ".env",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the chat API over HTTP",
				Action: serveCommand,
			},
			{
				Name:      "ask",
				Usage:     "Answer a single question",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Print routing decisions and matcher scores",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the raw JSON response",
					},
				},
			},
			{
				Name:   "check-feeds",
				Usage:  "Fetch and parse the location and job feeds",
				Action: checkFeedsCommand,
			},
			{
				Name:      "job-title",
				Usage:     "Derive display titles from job posting URLs",
				ArgsUsage: "<url>...",
				Action:    jobTitleCommand,
			},
		},
	}
}

// setup loads the env file and config, then installs the default logger.
func setup(c *cli.Context) error {
	if path := c.String("env-file"); path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load env file: %w", err)
		}
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if err := setupLogger(c.App.ErrWriter, cfg.Log); err != nil {
		return err
	}

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]any{}
	}
	c.App.Metadata[configKey] = cfg
	return nil
}

func setupLogger(w io.Writer, cfg config.LogConfig) error {
	if w == nil {
		w = os.Stderr
	}
	levelStr := strings.ToLower(cfg.Level)

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

func loadedConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := loadedConfig(c)
	svc, err := frontdesk.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	defer svc.Close()

	if err := svc.Reload(ctx); err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}

	srv, err := server.New(svc, cfg.Server)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx)
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := frontdesk.New(loadedConfig(c), frontdesk.WithoutCache())
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	defer svc.Close()

	if err := svc.Reload(ctx); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	out := c.App.Writer
	if c.Bool("explain") {
		mon := newExplainMonitor(out)
		resp := svc.AskWithMonitor(ctx, question, mon, mon)
		fmt.Fprintln(out)
		return printResponse(out, resp, c.Bool("json"))
	}
	return printResponse(out, svc.Ask(ctx, question), c.Bool("json"))
}

func checkFeedsCommand(c *cli.Context) error {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := loadedConfig(c)
	fetcher := frontdesk.NewFetcher(cfg.Feeds)
	out := c.App.Writer

	var failed bool

	data, err := fetcher.Fetch(ctx, cfg.Feeds.LocationsURL)
	if err == nil {
		var locations []*core.Location
		var skipped int
		locations, skipped, err = feed.ParseLocations(data)
		if err == nil {
			fmt.Fprintf(out, "locations: %d parsed, %d skipped (%s)\n", len(locations), skipped, cfg.Feeds.LocationsURL)
		}
	}
	if err != nil {
		failed = true
		fmt.Fprintf(out, "locations: FAILED: %v\n", err)
	}

	data, err = fetcher.Fetch(ctx, cfg.Feeds.JobsURL)
	if err == nil {
		var urls []string
		urls, err = feed.ParseSitemap(data)
		if err == nil {
			grouped := core.GroupJobURLs(urls)
			postings := 0
			for _, u := range grouped {
				postings += len(u)
			}
			fmt.Fprintf(out, "jobs: %d urls, %d postings in %d localities (%s)\n", len(urls), postings, len(grouped), cfg.Feeds.JobsURL)
		}
	}
	if err != nil {
		failed = true
		fmt.Fprintf(out, "jobs: FAILED: %v\n", err)
	}

	if failed {
		return errors.New("feed check failed")
	}
	return nil
}

func jobTitleCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one job URL is required")
	}
	out := c.App.Writer
	for _, u := range c.Args().Slice() {
		title, place := core.DeriveJobTitle(u)
		if place != "" {
			fmt.Fprintf(out, "%s\t%s\t%s\n", title, place, u)
			continue
		}
		fmt.Fprintf(out, "%s\t\t%s\n", title, u)
	}
	return nil
}

func printResponse(w io.Writer, resp answer.Response, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	return renderText(w, resp)
}
