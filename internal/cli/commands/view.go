package commands

import (
	"github.com/spf13/cobra"

	"ftr/internal/config"
	"ftr/internal/parser"
	"ftr/internal/storage"
	"ftr/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config  *config.Config
	storage storage.Storage
	parser  parser.Parser
	viewer  ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, st storage.Storage, p parser.Parser, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:  cfg,
		storage: st,
		parser:  p,
		viewer:  viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	doc, err := vc.storage.Load(vc.config.GetResultsPath())
	if err != nil {
		return err
	}

	failures, err := vc.parser.ParseFailures(doc)
	if err != nil {
		return err
	}

	return vc.viewer.View(failures)
}
