package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ftr/internal/cli"
	"ftr/internal/config"
	"ftr/internal/discovery"
	"ftr/internal/logging"
	"ftr/internal/parser"
	"ftr/internal/storage"
	"ftr/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Report  *ReportCommand
	List    *ListCommand
	Summary *SummaryCommand
	View    *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, log *zerolog.Logger) *Commands {
	jsonStorage := storage.NewJSONStorage()
	jestParser := parser.NewJestParser()
	filter := discovery.NewFilter()
	formatter := ui.NewFormatter(cfg, os.Stdout)
	viewer := ui.NewFailureViewer(cfg)

	return &Commands{
		Report:  NewReportCommand(cfg, jsonStorage, jestParser, formatter, log),
		List:    NewListCommand(cfg, jsonStorage, jestParser, filter, formatter, log),
		Summary: NewSummaryCommand(cfg, jsonStorage, jestParser, formatter, log),
		View:    NewViewCommand(cfg, jsonStorage, jestParser, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, log *zerolog.Logger) {
	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the names of failed test files",
		Long:  "Read the results file and print FAILED_FILES: followed by each failed test file name. Always exits 0.",
		Args:  cobra.NoArgs,
		RunE:  c.Report.Execute,
	}
	rootCmd.AddCommand(reportCmd)

	// Load config files and apply flags before any command runs.
	// The report always exits 0, so it warns about a broken config file
	// and runs with the layers that did load.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ConfigDir)
		*cfg = *loaded
		cfg.Flags = flags.ToConfigFlags()
		*log = logging.New(cmd.ErrOrStderr(), cfg.GetLogLevel())
		if err == nil {
			return nil
		}
		if cmd == rootCmd || cmd == reportCmd {
			log.Warn().Err(err).Msg("ignoring unreadable config")
			return nil
		}
		return err
	}
	rootCmd.RunE = c.Report.Execute

	rootCmd.PersistentFlags().StringVarP(&flags.ResultsFile, "file", "f", "", "Results JSON file to read (default \"test_results.json\")")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigDir, "config-dir", config.DefaultProjectPath, "Directory holding .ftr.yaml and .ftr.env")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List failed test files",
		Long:  "List failed test files from the results file as a tree, optionally with their failed test cases",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVar(&flags.NameFilter, "filter", "", "Filter test files by name pattern (supports wildcards, e.g., '*auth.test.ts' or '*dorm*')")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "Show failed test cases under each file")
	rootCmd.AddCommand(listCmd)

	// Summary command
	summaryCmd := &cobra.Command{
		Use:   "summary [files or directories...]",
		Short: "Summarize one or more results files",
		Long:  "Aggregate test file and test case counts across results files, e.g. the shards of a split run",
		RunE:  c.Summary.Execute,
	}
	summaryCmd.Flags().StringVar(&flags.Textfile, "textfile", "", "Also write the summary as Prometheus text format to this path")
	rootCmd.AddCommand(summaryCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "View test failures interactively",
		Long:  "Display failed test files and their failure messages in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}

// NewRootCommand builds the ftr command tree
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ftr",
		Short:         "Failed test reporter",
		Long:          `Report failed tests from a Jest or Vitest JSON results file. Without a subcommand, runs report.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Replaced once flags are parsed
	log := zerolog.Nop()

	var flags cli.Flags

	cmds := NewCommands(cfg, &log)
	cmds.Register(rootCmd, &flags, cfg, &log)

	return rootCmd
}
