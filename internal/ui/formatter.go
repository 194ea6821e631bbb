package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"ftr/internal/config"
	"ftr/internal/domain"
)

const (
	// FailedFilesHeader opens the failed-name report
	FailedFilesHeader = "FAILED_FILES:"
	// NoFailuresMessage is printed when the results hold no failed record
	NoFailuresMessage = "No failed tests found in JSON."
	// ReportErrorPrefix starts the single report error line
	ReportErrorPrefix = "Error parsing JSON: "
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		out:    out,
	}
}

// SetOutput redirects all further output to out
func (f *Formatter) SetOutput(out io.Writer) {
	f.out = out
}

// PrintReport prints the failed-name report. The text is plain so scripts can parse it.
func (f *Formatter) PrintReport(names []string) {
	if len(names) == 0 {
		fmt.Fprintln(f.out, NoFailuresMessage)
		return
	}

	fmt.Fprintln(f.out, FailedFilesHeader)
	for _, name := range names {
		fmt.Fprintln(f.out, name)
	}
}

// PrintReportError prints the report's single error line
func (f *Formatter) PrintReportError(err error) {
	fmt.Fprintf(f.out, "%s%v\n", ReportErrorPrefix, err)
}

// PrintFailureList prints failed test files as a tree, optionally with their failed cases
func (f *Formatter) PrintFailureList(failures []domain.TestFailure, showTestCases bool) {
	green.Fprintf(f.out, "Found %d failed test file(s):\n\n", len(failures))

	for i, failure := range failures {
		isLastFile := i == len(failures)-1
		branch, indent := "├── ", "│   "
		if isLastFile {
			branch, indent = "└── ", "    "
		}

		cyan.Fprintf(f.out, "%s%s\n", branch, f.displayPath(failure.Name))

		if !showTestCases {
			continue
		}

		if len(failure.Cases) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", indent, red.Sprint("(no failed test cases reported)"))
		}
		for j, testCase := range failure.Cases {
			caseBranch := "├── "
			if j == len(failure.Cases)-1 {
				caseBranch = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", indent, caseBranch, yellow.Sprint(testCase.DisplayName()))
		}

		if !isLastFile {
			fmt.Fprintln(f.out)
		}
	}
}

// PrintSummary prints aggregated statistics as a table followed by the failed files
func (f *Formatter) PrintSummary(s domain.Summary) {
	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                      Test Results Summary                     ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Result Files", fmt.Sprint(s.ResultFiles), white},
		{"Total Test Files", fmt.Sprint(s.TotalTestFiles), white},
		{"Passed Test Files", fmt.Sprint(s.PassedTestFiles), green},
		{"Failed Test Files", fmt.Sprint(s.FailedTestFiles), red},
		{"Total Test Cases", fmt.Sprint(s.TotalTestCases), white},
		{"Passed Test Cases", fmt.Sprint(s.PassedTestCases), green},
		{"Failed Test Cases", fmt.Sprint(s.FailedTestCases), red},
		{"Pending Test Cases", fmt.Sprint(s.PendingTestCases), yellow},
		{"Duration", fmt.Sprintf("%.2fs", s.Duration.Seconds()), white},
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		row.c.Fprintf(f.out, "%-27s", row.value)
		fmt.Fprintln(f.out, " │")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if s.FailedTestFiles == 0 {
		green.Fprintln(f.out, "✓ All tests passed!")
		return
	}

	red.Fprintf(f.out, "✗ %d test file(s) failed with %d test case failure(s)\n\n", s.FailedTestFiles, s.FailedTestCases)
	for _, name := range s.FailedNames {
		yellow.Fprintf(f.out, "  %s\n", f.displayPath(name))
	}
}

// displayPath shortens absolute test paths under the project directory
func (f *Formatter) displayPath(name string) string {
	if !filepath.IsAbs(name) {
		return name
	}
	base, err := filepath.Abs(f.config.ProjectPath)
	if err != nil {
		return name
	}
	rel, err := filepath.Rel(base, name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return name
	}
	return filepath.ToSlash(rel)
}
