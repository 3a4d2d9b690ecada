package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/mph-llm-experiments/alearn/internal/datefmt"
	"github.com/mph-llm-experiments/alearn/internal/filter"
	"github.com/mph-llm-experiments/alearn/internal/model"
	"github.com/mph-llm-experiments/alearn/internal/parser"
)

const messageTimeout = 3 * time.Second

// Options configures a Model.
type Options struct {
	Loader *parser.Loader
	// Path is the activities file; empty loads the built-in sample set.
	Path  string
	Clock func() time.Time
	Log   *zap.Logger
}

// Filter modal groups, in display order.
const (
	groupType = iota
	groupStatus
	groupCourse
	groupCount
)

var groupTitles = [groupCount]string{"Activity Type", "Status", "Course"}

// filterModal holds the criteria being edited. Nothing is applied until the
// user confirms.
type filterModal struct {
	open    bool
	pending model.FilterCriteria
	group   int
	options [groupCount][]string
	cursor  [groupCount]int
}

func (f *filterModal) value(group int) string {
	switch group {
	case groupType:
		return f.pending.Type
	case groupStatus:
		return f.pending.Status
	default:
		return f.pending.Course
	}
}

func (f *filterModal) set(group int, v string) {
	switch group {
	case groupType:
		f.pending.Type = v
	case groupStatus:
		f.pending.Status = v
	default:
		f.pending.Course = v
	}
}

// Model is the activity list screen.
type Model struct {
	loader    *parser.Loader
	path      string
	formatter *datefmt.Formatter
	log       *zap.Logger
	help      help.Model

	activities []model.Activity
	filters    model.FilterCriteria
	visible    []model.Activity
	cursor     int
	offset     int

	modal filterModal

	loading bool
	message string
	err     error
	width   int
	height  int
}

// NewModel creates the list screen. Activities are loaded by Init.
func NewModel(opts Options) Model {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	loader := opts.Loader
	if loader == nil {
		loader = parser.NewLoader(log)
	}
	return Model{
		loader:    loader,
		path:      opts.Path,
		formatter: datefmt.New(opts.Clock),
		log:       log,
		help:      help.New(),
		filters:   model.NoFilters(),
		loading:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadActivities()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case activitiesLoadedMsg:
		m.loading = false
		m.err = nil
		m.activities = msg.activities
		m.applyFilters()
		return m, nil

	case errorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case clearMessageMsg:
		m.message = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		if m.modal.open {
			return m.updateModal(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, listKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, listKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.scrollToCursor()

	case key.Matches(msg, listKeys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		m.scrollToCursor()

	case key.Matches(msg, listKeys.Open):
		if a, ok := m.Selected(); ok {
			m.log.Info("activity opened", zap.String("id", a.ID), zap.String("status", string(a.Status)))
			m.message = fmt.Sprintf("%s: %s", a.ActionVerb(), a.Title)
			return m, clearMessageAfter(messageTimeout)
		}

	case key.Matches(msg, listKeys.Filters):
		m.openModal()

	case key.Matches(msg, listKeys.ClearFilter):
		m.filters = model.NoFilters()
		m.applyFilters()
	}

	return m, nil
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.modal
	switch {
	case key.Matches(msg, modalKeys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, modalKeys.Close):
		f.open = false

	case key.Matches(msg, modalKeys.NextTab):
		f.group = (f.group + 1) % groupCount

	case key.Matches(msg, modalKeys.PrevTab):
		f.group = (f.group + groupCount - 1) % groupCount

	case key.Matches(msg, modalKeys.Up):
		if f.cursor[f.group] > 0 {
			f.cursor[f.group]--
		}

	case key.Matches(msg, modalKeys.Down):
		if f.cursor[f.group] < len(f.options[f.group])-1 {
			f.cursor[f.group]++
		}

	case key.Matches(msg, modalKeys.Select):
		options := f.options[f.group]
		if len(options) > 0 {
			f.set(f.group, options[f.cursor[f.group]])
		}

	case key.Matches(msg, modalKeys.Reset):
		f.pending = model.NoFilters()
		f.cursor = [groupCount]int{}

	case key.Matches(msg, modalKeys.Apply):
		f.open = false
		m.filters = f.pending
		m.applyFilters()
	}

	return m, nil
}

func (m *Model) openModal() {
	m.modal = filterModal{
		open:    true,
		pending: m.filters,
		options: [groupCount][]string{
			filter.Types(),
			filter.Statuses(),
			filter.Courses(m.activities),
		},
	}
	for g := 0; g < groupCount; g++ {
		current := m.modal.value(g)
		for i, v := range m.modal.options[g] {
			if v == current {
				m.modal.cursor[g] = i
			}
		}
	}
}

// applyFilters recomputes the visible activities from the current criteria.
func (m *Model) applyFilters() {
	m.visible = filter.FilterAndSort(m.activities, m.filters)
	m.cursor = 0
	m.offset = 0
	m.log.Debug("filters applied",
		zap.String("type", m.filters.Type),
		zap.String("status", m.filters.Status),
		zap.String("course", m.filters.Course),
		zap.Int("active", filter.ActiveCount(m.filters)),
		zap.Int("visible", len(m.visible)))
}

// cardsPerPage estimates how many cards fit on screen.
func (m Model) cardsPerPage() int {
	if m.height == 0 {
		return len(m.visible)
	}
	// header, filter bar, status and help lines take about ten rows; a card about eight.
	n := (m.height - 10) / 8
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Model) scrollToCursor() {
	page := m.cardsPerPage()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
}

// Filters returns the applied criteria.
func (m Model) Filters() model.FilterCriteria {
	return m.filters
}

// Visible returns the activities currently listed.
func (m Model) Visible() []model.Activity {
	return m.visible
}

// Selected returns the activity under the cursor.
func (m Model) Selected() (model.Activity, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return model.Activity{}, false
	}
	return m.visible[m.cursor], true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.loading:
		b.WriteString(emptyStateStyle.Render("Loading activities..."))
		b.WriteString("\n")
	case m.modal.open:
		b.WriteString(m.renderModal())
		b.WriteString("\n")
		b.WriteString(m.help.View(modalKeys))
		return b.String()
	case len(m.visible) == 0:
		b.WriteString(emptyStateStyle.Render(EmptyStateText))
		b.WriteString("\n")
	default:
		end := m.offset + m.cardsPerPage()
		if end > len(m.visible) {
			end = len(m.visible)
		}
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderCard(m.visible[i], i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.message != "" {
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(listKeys))
	return b.String()
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headerTitleStyle.Render("My Activities"),
		headerSubtitleStyle.Render(CountLabel(len(m.visible))),
	)
}

func (m Model) renderFilterBar() string {
	left := filterTitleStyle.Render("Filters") + "  " + courseStyle.Render(m.filters.Summary())
	if n := filter.ActiveCount(m.filters); n > 0 {
		left += " " + badgeStyle.Render(fmt.Sprintf("%d", n))
	}
	return filterBarStyle.Render(left + " " + courseStyle.Render(">"))
}

func (m Model) renderCard(a model.Activity, selected bool) string {
	dot := lipgloss.NewStyle().Foreground(statusColor(a.Status)).Render("●")
	head := typeLabelStyle.Render(strings.ToUpper(a.TypeLabel())) + " " + dot + "  " + courseStyle.Render(a.Course)

	lines := []string{head, titleStyle.Render(a.Title)}
	for _, d := range CardDetails(a, m.formatter) {
		lines = append(lines, detailLabelStyle.Render(d.Label+":")+detailTextStyle.Render(d.Text))
	}
	lines = append(lines, actionStyle.Render(a.ActionLabel()))

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderModal() string {
	f := m.modal
	var b strings.Builder
	b.WriteString(headerTitleStyle.Render("Filters"))
	b.WriteString("\n")

	labels := [groupCount]func(string) string{
		model.TypeOptionLabel,
		model.StatusOptionLabel,
		model.CourseOptionLabel,
	}
	for g := 0; g < groupCount; g++ {
		title := groupTitles[g]
		if g == f.group {
			title = "> " + title
		}
		b.WriteString(groupTitleStyle.Render(title))
		b.WriteString("\n")
		for i, v := range f.options[g] {
			pointer := "  "
			if g == f.group && i == f.cursor[g] {
				pointer = focusedOptionPointer.Render("› ")
			}
			text := labels[g](v)
			if v == f.value(g) {
				b.WriteString(pointer + selectedOptionStyle.Render(text+" ✓"))
			} else {
				b.WriteString(pointer + optionStyle.Render(text))
			}
			b.WriteString("\n")
		}
	}

	return modalStyle.Render(strings.TrimRight(b.String(), "\n"))
}
