package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ftr/internal/config"
	"ftr/internal/parser"
	"ftr/internal/storage"
	"ftr/internal/ui"
)

// ReportCommand prints the names of failed test files
type ReportCommand struct {
	config    *config.Config
	storage   storage.Storage
	parser    parser.Parser
	formatter *ui.Formatter
	log       *zerolog.Logger
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(
	cfg *config.Config,
	st storage.Storage,
	p parser.Parser,
	formatter *ui.Formatter,
	log *zerolog.Logger,
) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		storage:   st,
		parser:    p,
		formatter: formatter,
		log:       log,
	}
}

// Execute runs the command. It never returns an error: any failure to
// read or parse the results is printed as a single error line instead.
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	rc.formatter.SetOutput(cmd.OutOrStdout())
	path := rc.config.GetResultsPath()

	names, err := rc.failedNames(path)
	if err != nil {
		rc.log.Debug().Err(err).Str("path", path).Msg("could not produce failed test list")
		rc.formatter.PrintReportError(err)
		return nil
	}

	rc.log.Debug().Str("path", path).Int("failed", len(names)).Msg("report ready")
	rc.formatter.PrintReport(names)
	return nil
}

func (rc *ReportCommand) failedNames(path string) ([]string, error) {
	doc, err := rc.storage.Load(path)
	if err != nil {
		return nil, err
	}
	rc.log.Debug().Str("path", path).Int("records", len(doc.TestResults)).Msg("loaded results")
	return rc.parser.FailedNames(doc)
}
