// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sentiment-notes/internal/service"
	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// notesModel is the single screen of the client: the current page of notes
// with an optional add-note form and build info overlay on top.
type notesModel struct {
	ctx       context.Context
	browser   service.NotesBrowser
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	view   service.View
	idx    int
	status string
	errMsg string

	adding bool
	saving bool
	form   noteFormModel

	showBuildInfo bool
	quitByUser    bool
}

func newNotesModel(ctx context.Context, browser service.NotesBrowser, buildInfo models.AppBuildInfo) notesModel {
	return notesModel{
		ctx:       ctx,
		browser:   browser,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		view:      service.View{Loading: true, Page: service.PageState{PageIndex: 1}},
	}
}

func (m notesModel) Init() tea.Cmd {
	return m.cmdFetch(m.browser.Load)
}

func (m notesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case viewLoadedMsg:
		if msg.err != nil {
			m.view.Loading = false
			m.setError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.setView(msg.view)
		return m, nil
	case refreshedMsg:
		m.setView(msg.view)
		return m, nil
	case noteCreatedMsg:
		m.saving = false
		if msg.err != nil {
			m.form.err = msg.err.Error()
			return m, nil
		}
		m.adding = false
		m.errMsg = ""
		m.status = "Note saved"
		if msg.outcome.Local {
			m.status = "Server unavailable, note kept locally"
		}
		m.setView(msg.outcome.View)
		m.idx = 0
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.adding {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.adding {
		return m.updateForm(keyMsg)
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	return m.updateList(keyMsg)
}

func (m notesModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.view.Notes)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.next):
		return m.startFetch(m.browser.NextPage)
	case key.Matches(keyMsg, keys.prev):
		return m.startFetch(m.browser.PrevPage)
	case key.Matches(keyMsg, keys.refresh):
		return m.startFetch(m.browser.Refresh)
	case key.Matches(keyMsg, keys.filters):
		filter := models.Sentiment(filterKeys[keyMsg.String()])
		return m.startFetch(func(ctx context.Context) (service.View, error) {
			return m.browser.SetFilter(ctx, filter)
		})
	case key.Matches(keyMsg, keys.newNote):
		m.adding = true
		m.form = newNoteFormModel()
		m.status = ""
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.copy):
		note, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopy(note.Text)
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m notesModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.adding = false
		return m, nil
	}

	if m.form.submittable(keyMsg) {
		m.saving = true
		m.form.err = ""
		return m, m.cmdCreate(m.form.value(), m.form.sentiment())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(keyMsg)
	return m, cmd
}

func (m notesModel) startFetch(fetch func(context.Context) (service.View, error)) (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = ""
	m.view.Loading = true
	return m, m.cmdFetch(fetch)
}

func (m *notesModel) setView(v service.View) {
	m.view = v
	if m.idx >= len(v.Notes) {
		m.idx = len(v.Notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *notesModel) setError(err error) {
	switch {
	case errors.Is(err, service.ErrNoNextPage):
		m.status = "Already on the last page"
	case errors.Is(err, service.ErrAtFirstPage):
		m.status = "Already on the first page"
	case errors.Is(err, service.ErrFetchInFlight):
		m.status = "Still loading, try again in a moment"
		m.view.Loading = true
	default:
		m.errMsg = err.Error()
	}
}

func (m notesModel) selected() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.view.Notes) {
		return models.Note{}, false
	}
	return m.view.Notes[m.idx], true
}

func (m notesModel) cmdFetch(fetch func(context.Context) (service.View, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		v, err := fetch(ctx)
		return viewLoadedMsg{view: v, err: err}
	}
}

func (m notesModel) cmdCreate(text string, sentiment models.Sentiment) tea.Cmd {
	ctx, browser := m.ctx, m.browser
	return func() tea.Msg {
		outcome, err := browser.CreateNote(ctx, text, sentiment)
		return noteCreatedMsg{outcome: outcome, err: err}
	}
}

func (m notesModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}
