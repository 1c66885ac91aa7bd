package tui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/models"
	"github.com/mkhurana/reset/internal/stats"
	"github.com/mkhurana/reset/internal/validation"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.state == StateMetricsForm {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = m.previousState
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.saveMetricsForm()
			m.state = m.previousState
		case huh.StateAborted:
			m.state = m.previousState
		}
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(msg.Width-8, 50)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.state = nextState(m.state)
			if m.state == StateInsights || m.state == StateCoach {
				m.reloadInsights()
			}
			return m, nil
		case "shift+tab":
			m.state = prevState(m.state)
			return m, nil
		case "r":
			m.reload()
			return m, nil
		case "m":
			m.openMetricsForm()
			return m, m.form.Init()
		}

		if m.state == StateToday {
			return m.updateToday(msg), nil
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateToday(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ", "enter":
		m.toggleCurrent()
	}
	return m
}

func (m *Model) toggleCurrent() {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return
	}

	ref := m.items[m.cursor]
	section := m.proto[ref.section]
	item := section.Items[ref.item]
	checked := !m.checks[models.CheckKey{Section: section.Name, Item: item}]

	if err := m.store.UpsertCheck(m.day, section.Name, item, checked); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.reload()
}

func (m *Model) reloadInsights() {
	history, err := stats.CompletionHistory(m.store, m.proto, constants.HistoryTableDays, time.Now())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.history = history

	trend, err := stats.CompletionHistory(m.store, m.proto, constants.HistoryChartDays, time.Now())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.trend = trend

	streak, err := stats.CurrentStreak(m.store, m.proto, constants.StreakThresholdPct, time.Now())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.streak = streak
}

// openMetricsForm binds the form to a heap-allocated DailyMetrics. bubbletea
// copies the model on every Update, so the Validate closures and the eventual
// save must share one pointer rather than a field on any single copy.
func (m *Model) openMetricsForm() {
	data := &models.DailyMetrics{
		Day:           m.day,
		SleepHours:    constants.DefaultSleepHours,
		Energy:        constants.DefaultEnergy,
		TimeAvailable: constants.DefaultTimeAvailable,
	}
	if m.metrics != nil {
		existing := *m.metrics
		data = &existing
	}
	m.formData = data
	sleep := strconv.FormatFloat(data.SleepHours, 'f', -1, 64)
	energy := strconv.Itoa(data.Energy)
	timeAvail := strconv.Itoa(data.TimeAvailable)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sleep (hours)").
				Value(&sleep).
				Validate(func(s string) error {
					f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return err
					}
					if err := validation.SleepHours(f); err != nil {
						return err
					}
					data.SleepHours = f
					return nil
				}),
			huh.NewInput().
				Title("Energy (1-10)").
				Value(&energy).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					if err := validation.Energy(i); err != nil {
						return err
					}
					data.Energy = i
					return nil
				}),
			huh.NewInput().
				Title("Time available (minutes)").
				Value(&timeAvail).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					if err := validation.TimeAvailable(i); err != nil {
						return err
					}
					data.TimeAvailable = i
					return nil
				}),
			huh.NewInput().
				Title("Notes").
				Value(&data.Notes),
		),
	)

	m.previousState = m.state
	m.state = StateMetricsForm
}

// saveMetricsForm persists whatever the form wrote through the shared
// formData pointer.
func (m *Model) saveMetricsForm() {
	m.formData.Day = m.day
	if err := m.store.UpsertMetrics(*m.formData); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.reload()
}

func nextState(s SessionState) SessionState {
	switch s {
	case StateToday:
		return StateInsights
	case StateInsights:
		return StateCoach
	default:
		return StateToday
	}
}

func prevState(s SessionState) SessionState {
	switch s {
	case StateToday:
		return StateCoach
	case StateCoach:
		return StateInsights
	default:
		return StateToday
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
