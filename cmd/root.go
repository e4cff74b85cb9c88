package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gocad/internal/app"
	"github.com/philipparndt/gocad/internal/config"
	"github.com/philipparndt/gocad/version"
	"github.com/spf13/cobra"
)

// flags holds the persistent command line flags
var flags struct {
	config  string
	verbose bool
	width   int
	height  int
	grid    int
	fps     int
	watch   bool
}

var rootCmd = &cobra.Command{
	Use:   "gocad",
	Short: "Grid-snapped 2D shape sketcher",
	Long: `gocad is a small 2D sketching editor. Lines, circles, rectangles and
quadratic curves are placed with the mouse on a snapping grid; every node
can be picked and dragged later.

Keys (default): L line, C circle, R rect, B curve, D delete, H help.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return app.Run(cfg, app.Options{
			ConfigPath: path,
			Watch:      flags.watch,
			Logger:     newLogger(),
		})
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "config file (default $XDG_CONFIG_HOME/"+config.FileName+")")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&flags.width, "width", 0, "window width in pixels")
	pf.IntVar(&flags.height, "height", 0, "window height in pixels")
	pf.IntVar(&flags.grid, "grid", 0, "grid size in pixels")
	pf.IntVar(&flags.fps, "fps", 0, "target frames per second")
	pf.BoolVar(&flags.watch, "watch", true, "reload palette and keys when the config file changes")
}

// loadConfig layers defaults, the config file and the changed flags. It
// returns the config file path, or "" when no file is used.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	path := config.Resolve(flags.config)

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}

	fs := cmd.Flags()
	if fs.Changed("width") {
		cfg.Window.Width = flags.width
	}
	if fs.Changed("height") {
		cfg.Window.Height = flags.height
	}
	if fs.Changed("grid") {
		cfg.Grid = flags.grid
	}
	if fs.Changed("fps") {
		cfg.Window.FPS = flags.fps
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, path, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
