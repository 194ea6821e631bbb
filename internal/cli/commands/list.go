package commands

import (
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ftr/internal/config"
	"ftr/internal/discovery"
	"ftr/internal/domain"
	"ftr/internal/parser"
	"ftr/internal/storage"
	"ftr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	storage   storage.Storage
	parser    parser.Parser
	filter    *discovery.Filter
	formatter *ui.Formatter
	log       *zerolog.Logger
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	st storage.Storage,
	p parser.Parser,
	filter *discovery.Filter,
	formatter *ui.Formatter,
	log *zerolog.Logger,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		storage:   st,
		parser:    p,
		filter:    filter,
		formatter: formatter,
		log:       log,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	lc.formatter.SetOutput(cmd.OutOrStdout())

	doc, err := lc.storage.Load(lc.config.GetResultsPath())
	if err != nil {
		return err
	}

	failures, err := lc.parser.ParseFailures(doc)
	if err != nil {
		return err
	}

	var filtered []domain.TestFailure
	for _, failure := range failures {
		if lc.filter.Match(failure.Name, lc.config.Flags.NameFilter) {
			filtered = append(filtered, failure)
		}
	}
	lc.log.Debug().Int("failed", len(failures)).Int("shown", len(filtered)).Msg("filtered failures")

	if len(filtered) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No failed tests found")
		return nil
	}

	lc.formatter.PrintFailureList(filtered, lc.config.Flags.TestCases)
	return nil
}
