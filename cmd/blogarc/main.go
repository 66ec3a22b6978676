package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/blogarc/pkg/archive"
	"github.com/umputun/blogarc/pkg/config"
	"github.com/umputun/blogarc/pkg/content"
	"github.com/umputun/blogarc/pkg/feed"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" description:"config file (yml)"`
	Blog   string `short:"b" long:"blog" env:"BLOG_URL" description:"blog site URL, overrides config"`
	Output string `short:"o" long:"output" env:"OUTPUT_DIR" description:"output directory, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[INFO] starting blogarc version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] archiving failed: %v", err)
		os.Exit(1)
	}
}

// run loads the configuration, wires the pipeline and archives the blog
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("[INFO] archiving %s to %s", cfg.Blog.URL, cfg.Output.Dir)

	parser := feed.NewParser(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	archiver := archive.NewArchiver(archive.Params{
		Entries:   feed.NewPager(parser, cfg.Fetch.Delay, cfg.Fetch.MaxPages),
		Comments:  feed.NewComments(parser, cfg.Blog.URL),
		Renderer:  content.NewRenderer(),
		OutputDir: cfg.Output.Dir,
		Delay:     cfg.Fetch.Delay,
	})

	started := time.Now()
	count, err := archiver.Run(ctx, feed.PostsURL(cfg.Blog.URL, cfg.Blog.PageSize))
	if err != nil {
		return fmt.Errorf("archive %s: %w", cfg.Blog.URL, err)
	}

	log.Printf("[INFO] done, %d posts saved to %s in %v", count, cfg.Output.Dir, time.Since(started).Round(time.Millisecond))
	return nil
}

// loadConfig reads the config file when one is given, falls back to built-in
// defaults otherwise, and applies CLI overrides on top
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.Blog != "" {
		cfg.Blog.URL = opts.Blog
	}
	if opts.Output != "" {
		cfg.Output.Dir = opts.Output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
