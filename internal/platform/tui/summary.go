package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ecocatch/internal/storage"
)

// maxSummaryRounds is how many rounds the summary lists.
const maxSummaryRounds = 10

// RenderSummary formats the round log as a table of the best rounds plus
// totals. It returns an empty string when no round was played.
func RenderSummary(store *storage.Store) (string, error) {
	if store == nil {
		return "", nil
	}

	stats, err := store.Stats()
	if err != nil {
		return "", err
	}
	if stats.Rounds == 0 {
		return "", nil
	}

	rounds, err := store.TopRounds(maxSummaryRounds)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("SESSION SUMMARY"))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(summaryTable(rounds).View()))
	b.WriteString("\n")

	totalsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(totalsStyle.Render(fmt.Sprintf(
		"Rounds: %d  Best: %d  Average: %.1f  Caught: %d  Missed: %d",
		stats.Rounds, stats.BestScore, stats.AverageScore, stats.TotalCaught, stats.TotalMissed,
	)))
	b.WriteString("\n")

	return b.String(), nil
}

// summaryTable builds a non-interactive table of rounds, best first.
func summaryTable(rounds []storage.Round) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Caught", Width: 8},
		{Title: "Trash", Width: 7},
		{Title: "Frames", Width: 8},
		{Title: "Finished", Width: 10},
	}

	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.CaughtRecyclables),
			fmt.Sprintf("%d", r.CaughtTrash),
			fmt.Sprintf("%d", r.Frames),
			r.FinishedAt.Format("15:04:05"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No row is selected in a printed table
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}
