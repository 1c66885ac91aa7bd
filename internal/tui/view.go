package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkhurana/reset/internal/cli"
	"github.com/mkhurana/reset/internal/coach"
	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/models"
	"github.com/mkhurana/reset/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateInsights:
		content = m.viewInsights()
	case StateCoach:
		content = m.viewCoach()
	case StateMetricsForm:
		content = m.form.View()
	}

	var banner string
	if m.errMsg != "" {
		banner = errorStyle.Render("⚠ " + m.errMsg)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "Insights", "Coach"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) || (m.state == StateMetricsForm && m.previousState == SessionState(i)) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Reset protocol for %s\n\n", m.day)

	row := 0
	done, total := 0, 0
	for _, section := range m.proto {
		b.WriteString(sectionStyle.Render(section.Name))
		b.WriteString("\n")
		for _, item := range section.Items {
			total++
			checked := m.checks[models.CheckKey{Section: section.Name, Item: item}]
			if checked {
				done++
			}

			mark := "[ ]"
			if checked {
				mark = checkedStyle.Render("[x]")
			}
			line := fmt.Sprintf("  %s %s", mark, item)
			if row == m.cursor {
				line = cursorStyle.Render("▸") + line[1:]
			}
			b.WriteString(line)
			b.WriteString("\n")
			row++
		}
		b.WriteString("\n")
	}

	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	fmt.Fprintf(&b, "%s  %d/%d\n", m.progress.ViewAs(pct), done, total)

	return docStyle.Render(b.String())
}

func (m Model) viewInsights() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trend, last %d day(s)\n", constants.HistoryChartDays)
	b.WriteString(cli.Spark(m.trend))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Completion, last %d day(s)\n\n", constants.HistoryTableDays)
	for _, entry := range m.history {
		bar := historyBar(entry.Pct, 20)
		fmt.Fprintf(&b, "%s  %s %5.1f%%\n", entry.Day, bar, entry.Pct)
	}

	fmt.Fprintf(&b, "\nCurrent streak (>= %.0f%%): %d day(s)\n", constants.StreakThresholdPct, m.streak)

	b.WriteString("\nToday's metrics\n")
	if m.metrics == nil {
		b.WriteString(dimStyle.Render("  not recorded (press m)"))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "  Sleep:          %.1f h\n", m.metrics.SleepHours)
		fmt.Fprintf(&b, "  Energy:         %d/10\n", m.metrics.Energy)
		fmt.Fprintf(&b, "  Time available: %d min\n", m.metrics.TimeAvailable)
		if m.metrics.Notes != "" {
			fmt.Fprintf(&b, "  Notes:          %s\n", m.metrics.Notes)
		}
	}

	return docStyle.Render(b.String())
}

func (m Model) viewCoach() string {
	summary, err := stats.CompletionForDay(m.store, m.proto, m.day)
	if err != nil {
		return docStyle.Render(errorStyle.Render(err.Error()))
	}

	in := coach.InputsFromMetrics(summary.Pct, m.metrics)

	header := fmt.Sprintf("Coach advice for %s (%.1f%% complete)\n\n", m.day, summary.Pct)
	return docStyle.Render(header + coach.Generate(in).Markdown())
}

func historyBar(pct float64, width int) string {
	filled := int(pct / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + dimStyle.Render(strings.Repeat("░", width-filled))
}
