package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ftr/internal/config"
	"ftr/internal/discovery"
	"ftr/internal/domain"
	"ftr/internal/metrics"
	"ftr/internal/parser"
	"ftr/internal/storage"
	"ftr/internal/ui"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	config    *config.Config
	storage   *storage.JSONStorage
	parser    *parser.JestParser
	formatter *ui.Formatter
	log       *zerolog.Logger
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(
	cfg *config.Config,
	st *storage.JSONStorage,
	p *parser.JestParser,
	formatter *ui.Formatter,
	log *zerolog.Logger,
) *SummaryCommand {
	return &SummaryCommand{
		config:    cfg,
		storage:   st,
		parser:    p,
		formatter: formatter,
		log:       log,
	}
}

// Execute runs the command. Arguments are results files or directories
// holding them; without arguments the configured results file is used.
func (sc *SummaryCommand) Execute(cmd *cobra.Command, args []string) error {
	sc.formatter.SetOutput(cmd.OutOrStdout())

	paths := args
	if len(paths) == 0 {
		paths = []string{sc.config.GetResultsPath()}
	}

	scanner := discovery.NewScanner(sc.config.PathsToIgnore, sc.config.ResultsGlob)
	files, err := scanner.Expand(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no results files found in %s", strings.Join(paths, ", "))
	}
	sc.log.Debug().Strs("files", files).Msg("summarizing results")

	var progress func(done int)
	var bar *ui.ProgressBar
	if len(files) > 1 {
		bar = ui.NewProgressBar(len(files), "Reading results: ")
		progress = bar.Update
	}
	docs, err := sc.storage.LoadAll(files, progress)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	var total domain.Summary
	for i, doc := range docs {
		summary, err := sc.parser.ParseCounts(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", files[i], err)
		}
		total.Add(summary)
	}

	sc.formatter.PrintSummary(total)

	if path := sc.config.Flags.Textfile; path != "" {
		if err := metrics.WriteTextfile(path, total); err != nil {
			return err
		}
		sc.log.Info().Str("path", path).Msg("wrote metrics textfile")
	}
	return nil
}
