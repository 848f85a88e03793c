package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
)

// ErrNoStore is returned when a component is built without a store.
var ErrNoStore = errors.New("tui: no store")

type dialogField int

const (
	fieldDescription dialogField = iota
	fieldDetail
	fieldDeadline
	fieldCount
)

type dialogState int

const (
	dialogEditing dialogState = iota
	dialogConfirmed
	dialogCancelled
)

// Dialog is the add-item form: description, detail and a deadline picker.
type Dialog struct {
	store *store.Store

	desc     textinput.Model
	detail   textarea.Model
	deadline model.Date
	focus    dialogField
	state    dialogState

	keys dialogKeyMap
	help help.Model
}

// NewDialog builds an empty form with the deadline preset to today.
func NewDialog(s *store.Store) (Dialog, error) {
	if s == nil {
		return Dialog{}, ErrNoStore
	}
	desc := textinput.New()
	desc.Placeholder = "Short description"
	desc.Prompt = ""
	desc.Width = 40

	detail := textarea.New()
	detail.Placeholder = "Details"
	detail.ShowLineNumbers = false
	detail.CharLimit = 0
	detail.MaxHeight = 0
	detail.SetWidth(42)
	detail.SetHeight(5)

	d := Dialog{
		store:    s,
		desc:     desc,
		detail:   detail,
		deadline: s.Today(),
		keys:     defaultDialogKeys(),
		help:     help.New(),
	}
	d.desc.Focus()
	return d, nil
}

func (d Dialog) Confirmed() bool      { return d.state == dialogConfirmed }
func (d Dialog) Cancelled() bool      { return d.state == dialogCancelled }
func (d Dialog) Deadline() model.Date { return d.deadline }

// Result builds the item from the trimmed fields and hands it to the store.
// The store may drop it under the deadline policy; the item is returned either way.
func (d Dialog) Result() *model.Item {
	it := model.NewItem(
		strings.TrimSpace(d.desc.Value()),
		strings.TrimSpace(d.detail.Value()),
		d.deadline,
	)
	d.store.Add(it)
	return it
}

func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	km, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(km, d.keys.Cancel):
			d.state = dialogCancelled
			return d, nil
		case key.Matches(km, d.keys.Confirm):
			d.state = dialogConfirmed
			return d, nil
		case key.Matches(km, d.keys.Next):
			return d, d.setFocus((d.focus + 1) % fieldCount)
		case key.Matches(km, d.keys.Prev):
			return d, d.setFocus((d.focus + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	switch d.focus {
	case fieldDescription:
		if isKey && km.Type == tea.KeyEnter {
			return d, d.setFocus(fieldDetail)
		}
		d.desc, cmd = d.desc.Update(msg)
	case fieldDetail:
		d.detail, cmd = d.detail.Update(msg)
	case fieldDeadline:
		if isKey {
			d.updateDeadline(km)
		}
	}
	return d, cmd
}

func (d *Dialog) updateDeadline(km tea.KeyMsg) {
	switch {
	case key.Matches(km, d.keys.Later):
		d.deadline = d.deadline.AddDays(1)
	case key.Matches(km, d.keys.Earlier):
		d.deadline = d.deadline.AddDays(-1)
	case key.Matches(km, d.keys.Month):
		d.deadline = d.deadline.AddMonths(1)
	case key.Matches(km, d.keys.Back):
		d.deadline = d.deadline.AddMonths(-1)
	case key.Matches(km, d.keys.Today):
		d.deadline = d.store.Today()
	case km.Type == tea.KeyEnter:
		d.state = dialogConfirmed
	}
}

func (d *Dialog) setFocus(f dialogField) tea.Cmd {
	d.focus = f
	d.desc.Blur()
	d.detail.Blur()
	switch f {
	case fieldDescription:
		return d.desc.Focus()
	case fieldDetail:
		return d.detail.Focus()
	}
	return nil
}

func (d Dialog) View() string {
	label := func(f dialogField, s string) string {
		if d.focus == f {
			return focusedLabelStyle.Render(s)
		}
		return labelStyle.Render(s)
	}

	date := d.deadline.Long()
	if d.focus == fieldDeadline {
		date = selectedStyle.Render("◀ " + date + " ▶")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Add new todo item"),
		mutedStyle.Render("Use this dialog to create a new todo item"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, label(fieldDescription, "Description"), d.desc.View()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, label(fieldDetail, "Details"), d.detail.View()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, label(fieldDeadline, "Deadline"), date),
		"",
		helpStyle.Render(d.help.View(d.keys)),
	)
	return panelStyle().Render(body)
}
