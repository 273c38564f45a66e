package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/pinboard"
	"github.com/phanxgames/pinboard/view"
)

type runOptions struct {
	script      string
	debug       bool
	width       int
	height      int
	title       string
	status      bool
	screenshots string
}

func runCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <layout.toml>",
		Short: "Open a layout in a window",
		Long: `Open a layout in a window. Left click picks up and places, right click
copies and stamps, both buttons remove, Escape cancels, F12 takes a screenshot.

With --script the pointer script is played back one step per frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.script, "script", "s", "", "replay a pointer script")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "verify the board after every operation")
	cmd.Flags().IntVar(&opts.width, "width", 0, "window width (default: layout width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "window height (default: layout height)")
	cmd.Flags().StringVar(&opts.title, "title", "", "window title (default: layout file name)")
	cmd.Flags().BoolVar(&opts.status, "status", true, "show the status overlay")
	cmd.Flags().StringVar(&opts.screenshots, "screenshots", "screenshots", "screenshot directory")

	return cmd
}

func runWindow(cmd *cobra.Command, path string, opts runOptions) error {
	logger := loggerFromContext(cmd.Context())
	b, err := loadBoard(path, opts.debug, logger)
	if err != nil {
		return err
	}
	session := pinboard.NewSession(b)

	title := opts.title
	if title == "" {
		title = "Pinboard - " + strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	game := view.NewGame(b, session, view.RunConfig{
		Title:         title,
		Width:         opts.width,
		Height:        opts.height,
		ShowStatus:    opts.status,
		ScreenshotDir: opts.screenshots,
	})
	if opts.script != "" {
		r, err := loadScript(opts.script)
		if err != nil {
			return err
		}
		game.SetRunner(r)
		logger.Info("replaying", "script", opts.script, "steps", r.Len())
	}
	return game.RunContext(cmd.Context())
}
