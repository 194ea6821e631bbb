package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ftr/internal/config"
	"ftr/internal/domain"
)

// maxMessageLines caps each failure message in the details pane
const maxMessageLines = 20

// FailureViewer displays test failures in an interactive TUI
type FailureViewer struct {
	config *config.Config
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config) *FailureViewer {
	return &FailureViewer{config: cfg}
}

// View displays test failures in an interactive TUI
func (fv *FailureViewer) View(failures []domain.TestFailure) error {
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()
	formatter := NewFormatter(fv.config, nil)

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, failure := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(formatter.displayPath(failure.Name))), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Failed test files: %d | ↑↓ navigate, → details, ← back, q to exit ", len(failures)))

	updateDetails := func(index int) {
		if index < 0 || index >= len(failures) {
			return
		}
		statsView.SetText(formatFailureStats(failures[index], index+1))
		detailsView.SetText(formatFailureDetails(failures[index]))
		detailsView.ScrollToBeginning()
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails(index)
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	updateDetails(0)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureDetails formats a test failure for display using tview color tags
func formatFailureDetails(failure domain.TestFailure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ File: %s[white]\n", tview.Escape(failure.Name))
	if failure.Duration > 0 {
		fmt.Fprintf(&b, "[cyan]Duration: %s[white]\n", failure.Duration)
	}
	b.WriteString("\n")

	if len(failure.Cases) == 0 && failure.Message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n\n", truncateLines(tview.Escape(failure.Message)))
	}

	for i, testCase := range failure.Cases {
		fmt.Fprintf(&b, "[yellow]%d) %s[white]\n", i+1, tview.Escape(testCase.DisplayName()))
		for _, message := range testCase.FailureMessages {
			fmt.Fprintf(&b, "%s\n", truncateLines(tview.Escape(message)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// formatFailureStats formats the header line for a failure
func formatFailureStats(failure domain.TestFailure, number int) string {
	return fmt.Sprintf("[cyan]#%d[white] [yellow]%s[white]  [red]%d failed case(s)[white]\n",
		number, tview.Escape(failure.Name), len(failure.Cases))
}

func truncateLines(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) <= maxMessageLines {
		return strings.Join(lines, "\n")
	}
	rest := len(lines) - maxMessageLines
	return strings.Join(lines[:maxMessageLines], "\n") + fmt.Sprintf("\n[gray]... and %d more lines[white]", rest)
}
