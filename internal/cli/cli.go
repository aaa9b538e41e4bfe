// Package cli implements the hexgrid command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexgrid/pkg/buildinfo"
	"github.com/matzehuels/hexgrid/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the binary name used in help text and completions.
const appName = "hexgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// stdout receives generated output; stderr receives status lines.
	stdout io.Writer
	stderr io.Writer
}

// New creates a CLI that logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stdout: os.Stdout,
		stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// ReportError prints err to stderr without its error code.
func (c *CLI) ReportError(err error) {
	printError(c.stderr, "%s", errors.UserMessage(err))
}

// RootCommand creates the root cobra command. The root command itself
// generates the tiling; completion is its only subcommand.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.generateCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())
	root.AddCommand(c.completionCommand())
	return root
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
