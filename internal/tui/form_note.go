// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formFocus int

const (
	focusText formFocus = iota
	focusSentiment
)

// noteFormModel collects the text and sentiment of a new note.
type noteFormModel struct {
	text         textarea.Model
	sentimentIdx int
	focus        formFocus
	err          string
}

func newNoteFormModel() noteFormModel {
	ta := textarea.New()
	ta.Placeholder = "What's on your mind?"
	ta.CharLimit = models.MaxNoteTextLength
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.Focus()

	return noteFormModel{text: ta, sentimentIdx: len(models.Sentiments) - 1}
}

func (m noteFormModel) sentiment() models.Sentiment {
	return models.Sentiments[m.sentimentIdx]
}

func (m noteFormModel) value() string {
	return m.text.Value()
}

// submittable reports whether keyMsg asks to save the form.
func (m noteFormModel) submittable(keyMsg tea.KeyMsg) bool {
	if key.Matches(keyMsg, keys.save) {
		return true
	}
	return m.focus == focusSentiment && key.Matches(keyMsg, keys.enter)
}

func (m noteFormModel) Update(msg tea.Msg) (noteFormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && key.Matches(keyMsg, keys.tab) {
		return m.toggleFocus()
	}

	if m.focus == focusSentiment {
		if !ok {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.prev), key.Matches(keyMsg, keys.up):
			m.sentimentIdx = (m.sentimentIdx + len(models.Sentiments) - 1) % len(models.Sentiments)
		case key.Matches(keyMsg, keys.next), key.Matches(keyMsg, keys.down):
			m.sentimentIdx = (m.sentimentIdx + 1) % len(models.Sentiments)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	return m, cmd
}

func (m noteFormModel) toggleFocus() (noteFormModel, tea.Cmd) {
	if m.focus == focusText {
		m.focus = focusSentiment
		m.text.Blur()
		return m, nil
	}

	m.focus = focusText
	return m, m.text.Focus()
}

func (m noteFormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New note"))
	b.WriteString("\n\n")
	b.WriteString(m.text.View())
	b.WriteString("\n\n")

	b.WriteString("Sentiment: ")
	for i, s := range models.Sentiments {
		label := s.String()
		if i == m.sentimentIdx {
			label = "[" + label + "]"
			if m.focus == focusSentiment {
				label = selectedStyle.Render(label)
			}
		} else {
			label = " " + label + " "
		}
		b.WriteString(sentimentStyle(s).Render(label))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch field  ←/→: sentiment  ctrl+s: save  esc: cancel"))
	return b.String()
}

func sentimentStyle(s models.Sentiment) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(sentimentColors[s.String()])
}
