// Package tui is the full-screen todo window: a deadline-sorted list, a
// detail pane, an add dialog and a delete confirmation.
package tui

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
)

// listItem adapts *model.Item to bubbles/list.Item.
type listItem struct {
	item    *model.Item
	urgency model.Urgency
}

func (i listItem) Title() string       { return i.item.Description }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Description }

// Single-line rows, coloured by how soon they are due.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	text := truncate(it.item.Description, m.Width()-2)
	switch it.urgency {
	case model.DueToday:
		text = todayStyle.Render(text)
	case model.DueTomorrow:
		text = tomorrowStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+text)
}

type mode int

const (
	modeBrowse mode = iota
	modeConfirmDelete
	modeDialog
)

// Model is the main window.
type Model struct {
	store     *store.Store
	log       zerolog.Logger
	copyFn    func(string) error
	newDialog func(*store.Store) (Dialog, error)

	filter  model.Filter
	view    []*model.Item // filtered + sorted projection of the store
	list    list.Model
	mode    mode
	pending *model.Item // delete candidate
	dialog  Dialog
	status  string

	keys   keyMap
	help   help.Model
	width  int
	height int
}

type Option func(*Model)

func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) { m.log = l.With().Str("component", "tui").Logger() }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copyFn = fn }
}

// WithDialog replaces the add dialog constructor.
func WithDialog(fn func(*store.Store) (Dialog, error)) Option {
	return func(m *Model) { m.newDialog = fn }
}

// New builds the window over s and selects the first row.
func New(s *store.Store, opts ...Option) (Model, error) {
	if s == nil {
		return Model{}, ErrNoStore
	}
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = helpStyle

	m := Model{
		store:     s,
		log:       zerolog.Nop(),
		copyFn:    clipboard.WriteAll,
		newDialog: NewDialog,
		list:      l,
		keys:      defaultKeys(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
	for _, o := range opts {
		o(&m)
	}
	m.resize()
	m.refresh(nil)
	return m, nil
}

// Run shows the window until the user quits. It does not save.
func Run(s *store.Store, opts ...Option) error {
	m, err := New(s, opts...)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// Selected is the highlighted item, or nil when the view is empty.
func (m Model) Selected() *model.Item {
	i := m.list.Index()
	if i < 0 || i >= len(m.view) {
		return nil
	}
	return m.view[i]
}

func (m Model) Filter() model.Filter { return m.filter }

// Visible returns the rows currently shown, in display order.
func (m Model) Visible() []*model.Item { return m.view }

// refresh rebuilds the view from the store and selects sel when visible,
// otherwise the first row.
func (m *Model) refresh(sel *model.Item) {
	today := m.store.Today()
	m.view = model.View(m.store.Items(), m.filter, today)
	items := make([]list.Item, 0, len(m.view))
	for _, it := range m.view {
		items = append(items, listItem{item: it, urgency: model.UrgencyOf(it, today)})
	}
	m.list.SetItems(items)
	m.list.Title = m.title()

	idx := model.IndexOf(m.view, sel)
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
}

func (m Model) title() string {
	t := fmt.Sprintf("Todo List  %s", mutedStyle.Render(fmt.Sprintf("%d items", len(m.view))))
	if m.filter == model.FilterToday {
		t += "  " + todayStyle.Render("today")
	}
	return t
}

func (m *Model) resize() {
	m.list.SetSize(m.listWidth(), m.height-4)
}

func (m Model) listWidth() int {
	w := m.width / 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case modeDialog:
		return m.updateDialog(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		m.status = ""
		switch {
		case key.Matches(km, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(km, m.keys.Add):
			return m.openDialog()
		case key.Matches(km, m.keys.Delete):
			if it := m.Selected(); it != nil {
				m.pending = it
				m.mode = modeConfirmDelete
			}
			return m, nil
		case key.Matches(km, m.keys.Filter):
			m.filter = m.filter.Toggle()
			m.refresh(m.Selected())
			return m, nil
		case key.Matches(km, m.keys.Copy):
			m.copySelected()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) openDialog() (tea.Model, tea.Cmd) {
	d, err := m.newDialog(m.store)
	if err != nil {
		m.log.Error().Err(err).Msg("couldn't load the dialog")
		return m, nil
	}
	m.dialog = d
	m.mode = modeDialog
	return m, nil
}

func (m Model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	switch {
	case m.dialog.Confirmed():
		it := m.dialog.Result()
		m.mode = modeBrowse
		m.refresh(it)
		m.log.Debug().Str("description", it.Description).Bool("added", m.store.Contains(it)).Msg("dialog confirmed")
		return m, nil
	case m.dialog.Cancelled():
		m.mode = modeBrowse
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "y", "Y", "enter":
		idx := m.list.Index()
		m.store.Delete(m.pending)
		m.pending = nil
		m.mode = modeBrowse
		m.refresh(nil)
		if idx >= len(m.view) {
			idx = len(m.view) - 1
		}
		if idx > 0 {
			m.list.Select(idx)
		}
	case "n", "N", "esc", "q":
		m.pending = nil
		m.mode = modeBrowse
	}
	return m, nil
}

func (m *Model) copySelected() {
	it := m.Selected()
	if it == nil {
		return
	}
	if err := m.copyFn(it.Detail); err != nil {
		m.log.Warn().Err(err).Msg("clipboard write failed")
		m.status = errorStyle.Render("copy failed: " + err.Error())
		return
	}
	m.status = accentStyle.Render("detail copied")
}

func (m Model) View() string {
	if m.mode == modeDialog {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
	}

	listPane := panelStyle().Width(m.listWidth()).Render(m.list.View())
	detailWidth := m.width - m.listWidth() - 6
	if detailWidth < 20 {
		detailWidth = 20
	}
	detailPane := panelStyle().Width(detailWidth).Render(m.detailView(detailWidth - 2))
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.mode == modeConfirmDelete && m.pending != nil {
		footer = panelStyle().Render(
			titleStyle.Render("Delete item: "+m.pending.Description) + "\n" +
				"Are you sure? " + mutedStyle.Render("(y/n)"))
	} else if m.status != "" {
		footer = m.status + "  " + footer
	}
	return content + "\n" + footer
}

// detailView mirrors the selected item: its detail text, then the deadline.
func (m Model) detailView(width int) string {
	it := m.Selected()
	if it == nil {
		return mutedStyle.Render("No item selected")
	}
	body := lipgloss.NewStyle().Width(width).Render(it.Detail)
	return body + "\n\n" + accentStyle.Render("Due: "+it.Deadline.Long())
}
