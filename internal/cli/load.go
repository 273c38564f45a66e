package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/phanxgames/pinboard"
)

// loadBoard reads a TOML layout and builds a board from it.
func loadBoard(path string, debug bool, logger *log.Logger) (*pinboard.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	root, err := pinboard.LoadLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b := pinboard.NewBoard(root)
	b.SetLogger(logger)
	b.SetDebugMode(debug)
	logger.Debug("loaded layout", "path", path, "items", b.Len())
	return b, nil
}

// loadScript reads a TOML replay script.
func loadScript(path string) (*pinboard.Runner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	r, err := pinboard.LoadScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
