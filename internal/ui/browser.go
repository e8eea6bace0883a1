package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"rvtest/internal/domain"
)

// Viewer displays results interactively
type Viewer interface {
	View(title string, results []domain.Result) error
}

// ResultBrowser displays run results in a two-pane TUI
type ResultBrowser struct{}

// NewResultBrowser creates a new ResultBrowser
func NewResultBrowser() *ResultBrowser {
	return &ResultBrowser{}
}

// View shows results until the user quits with q, Esc on the list, or Ctrl+C
func (rb *ResultBrowser) View(title string, results []domain.Result) error {
	if len(results) == 0 {
		color.Yellow("No results to browse")
		return nil
	}

	app := tview.NewApplication()

	failedOnly := false
	visible := visibleIndexes(results, failedOnly)

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Details ")

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(browserHeader(title, results, failedOnly))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(visible) {
			detailsView.SetText("")
			return
		}
		detailsView.SetText(formatResultDetails(results[visible[index]]))
		detailsView.ScrollToBeginning()
	}

	fillList := func() {
		list.Clear()
		for _, i := range visible {
			list.AddItem(browserItemText(i, results[i]), "", 0, nil)
		}
		updateHeader()
		updateDetails()
	}

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyEscape:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				app.Stop()
				return nil
			case 'f', 'F':
				failedOnly = !failedOnly
				visible = visibleIndexes(results, failedOnly)
				fillList()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEscape:
			app.SetFocus(list)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	fillList()

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("result browser: %w", err)
	}
	return nil
}

// visibleIndexes returns the positions of the results shown in the list
func visibleIndexes(results []domain.Result, failedOnly bool) []int {
	indexes := make([]int, 0, len(results))
	for i, r := range results {
		if failedOnly && r.Passed() {
			continue
		}
		indexes = append(indexes, i)
	}
	return indexes
}

func browserHeader(title string, results []domain.Result, failedOnly bool) string {
	s := domain.Summarize(results)
	filter := "all"
	if failedOnly {
		filter = "failed only"
	}
	return fmt.Sprintf(" %s | [green]%d passed[white], [red]%d failed[white] of %d | showing %s | [yellow]F[white] filter, → details, ← back, [yellow]Q[white] quit ",
		tview.Escape(title), s.Passed, s.Failed, s.Total, filter)
}

func browserItemText(index int, r domain.Result) string {
	mark := "[red]✗[white]"
	if r.Passed() {
		mark = "[green]✓[white]"
	}
	return fmt.Sprintf("%s [yellow]%d.[white] %s", mark, index+1, tview.Escape(r.Test.Label()))
}

func formatResultDetails(r domain.Result) string {
	outcome := "[red]" + r.Outcome.String() + "[white]"
	if r.Passed() {
		outcome = "[green]" + r.Outcome.String() + "[white]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[yellow]Image:[white]     %s\n", tview.Escape(r.Test.Path))
	fmt.Fprintf(&b, "[yellow]Mode:[white]      %s\n", r.Test.Mode)
	fmt.Fprintf(&b, "[yellow]Outcome:[white]   %s\n", outcome)
	fmt.Fprintf(&b, "[yellow]Exit code:[white] %d\n", r.ExitCode)
	fmt.Fprintf(&b, "[yellow]Duration:[white]  %s\n", r.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "[yellow]Command:[white]   %s\n", tview.Escape(strings.Join(r.Args, " ")))
	return b.String()
}
