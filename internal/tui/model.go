// Package tui implements the interactive checklist screen. It is a thin view
// over the store; every mutation goes through the same storage calls the CLI
// commands use, so the TUI and CLI can be mixed freely within a day.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/huh"

	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/models"
	"github.com/mkhurana/reset/internal/protocol"
	"github.com/mkhurana/reset/internal/storage"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateInsights
	StateCoach
	StateMetricsForm
)

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Metrics key.Binding
	Tab     key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Metrics, k.Tab, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Metrics, k.Tab, k.Refresh, k.Quit},
	}
}

var defaultKeys = KeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	Metrics: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "metrics")),
	Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// itemRef addresses one protocol item by position.
type itemRef struct {
	section int
	item    int
}

type Model struct {
	store storage.Provider
	proto protocol.Protocol

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	progress      progress.Model

	day    string
	checks map[models.CheckKey]bool
	items  []itemRef
	cursor int

	history []models.CompletionStats
	trend   []models.CompletionStats
	streak  int
	metrics *models.DailyMetrics

	form     *huh.Form
	formData *models.DailyMetrics

	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, proto protocol.Protocol) Model {
	var items []itemRef
	for si, section := range proto {
		for ii := range section.Items {
			items = append(items, itemRef{section: si, item: ii})
		}
	}

	m := Model{
		store:    store,
		proto:    proto,
		state:    StateToday,
		keys:     defaultKeys,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		day:      time.Now().Format(constants.DateFormat),
		items:    items,
	}
	m.reload()
	return m
}

// reload re-reads everything the screens show. Called on startup, after every
// toggle, and on explicit refresh.
func (m *Model) reload() {
	m.errMsg = ""

	checks, err := m.store.GetChecksForDay(m.day)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.checks = checks

	metrics, err := m.store.GetMetrics(m.day)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.metrics = metrics

	m.reloadInsights()
}
