package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"planeview/internal/config"
	"planeview/internal/remote"
	"planeview/internal/tui"
)

var version = "0.1.0"

type flags struct {
	config      string
	listen      string
	watch       bool
	logFile     string
	debug       bool
	printConfig bool

	hitRadius float64
	xrange    []float64
	yrange    []float64
	frame     time.Duration
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "planeview [file]",
		Short: "Interactive coordinate plane in the terminal",
		Long: `planeview draws a pannable, zoomable 2D coordinate plane with gridlines,
labels and an editable point set. Click to add or remove points, drag to pan,
scroll to zoom. Point files (.csv, .wkt, .geojson, .json, .kml) can be opened
at start or from the sidebar.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			if f.printConfig {
				b, err := cfg.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd.Context(), cfg, f, path)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML config file")
	fl.StringVarP(&f.listen, "listen", "l", "", "serve the WebSocket bridge on this address (e.g. 127.0.0.1:7070)")
	fl.BoolVarP(&f.watch, "watch", "w", false, "reload the open file when it changes")
	fl.StringVar(&f.logFile, "log", "", "write logs to this file")
	fl.BoolVar(&f.debug, "debug", false, "log at debug level")
	fl.BoolVar(&f.printConfig, "print-config", false, "print the effective config and exit")
	fl.Float64Var(&f.hitRadius, "hit-radius", 0, "point hit radius in text rows")
	fl.Float64SliceVar(&f.xrange, "xrange", nil, "initial x range as min,max")
	fl.Float64SliceVar(&f.yrange, "yrange", nil, "initial y range as min,max")
	fl.DurationVar(&f.frame, "frame-interval", 0, "time between frames (e.g. 33ms)")
	return cmd
}

// loadConfig reads --config over the defaults and applies flags the user set.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return cfg, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("listen") {
		cfg.Remote.Listen = f.listen
	}
	if fl.Changed("watch") {
		cfg.Watch = f.watch
	}
	if fl.Changed("hit-radius") {
		cfg.Input.HitRadius = f.hitRadius
	}
	if fl.Changed("xrange") {
		if len(f.xrange) != 2 {
			return cfg, errors.New("--xrange wants min,max")
		}
		cfg.View.Min.X, cfg.View.Max.X = f.xrange[0], f.xrange[1]
	}
	if fl.Changed("yrange") {
		if len(f.yrange) != 2 {
			return cfg, errors.New("--yrange wants min,max")
		}
		cfg.View.Min.Y, cfg.View.Max.Y = f.yrange[0], f.yrange[1]
	}
	if fl.Changed("frame-interval") {
		cfg.View.FrameInterval = f.frame
	}
	return cfg, cfg.Validate()
}

// newLogger writes to --log when given. The alt screen owns the terminal,
// so there is no console logging.
func newLogger(f flags) (*slog.Logger, func() error, error) {
	if f.logFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	file, err := tea.LogToFile(f.logFile, "planeview")
	if err != nil {
		return nil, nil, err
	}
	level := slog.LevelInfo
	if f.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})), file.Close, nil
}

func run(ctx context.Context, cfg config.Config, f flags, path string) error {
	log, closeLog, err := newLogger(f)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("starting", "version", version, "path", path, "listen", cfg.Remote.Listen, "watch", cfg.Watch)
	m, err := tui.New(tui.Options{Config: cfg, Logger: log, Path: path})
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if cfg.Remote.Listen != "" {
		srv := remote.NewServer(tui.RemoteSink(p), log)
		go func() {
			if err := srv.ListenAndServe(ctx, cfg.Remote.Listen, nil); err != nil {
				log.Error("remote bridge stopped", "err", err)
				p.Send(tui.StatusMsg("remote: " + err.Error()))
			}
		}()
	}

	_, err = p.Run()
	return err
}
