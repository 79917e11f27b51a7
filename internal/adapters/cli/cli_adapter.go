package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/texstream/texevents/internal/app"
)

// Adapter implements app.InputProvider using Cobra flags.
type Adapter struct {
	cmd *cobra.Command
}

// NewAdapter creates a new CLI adapter instance.
func NewAdapter(cmd *cobra.Command) *Adapter {
	if cmd.Flag("input") == nil || cmd.Flag("output") == nil {
		panic("CLI Adapter requires command with 'input' and 'output' flags defined")
	}
	return &Adapter{cmd: cmd}
}

// GetInput retrieves the markup string and configuration from Cobra flags.
func (a *Adapter) GetInput() (markup string, config app.Config, err error) {
	markup, err = a.cmd.Flags().GetString("input")
	if err != nil {
		return "", app.Config{}, fmt.Errorf("failed to get 'input' flag: %w", err)
	}
	if markup == "" {
		return "", app.Config{}, fmt.Errorf("input markup string cannot be empty")
	}

	outputFile, _ := a.cmd.Flags().GetString("output")
	config = app.Config{OutputFile: outputFile}

	return markup, config, nil
}
