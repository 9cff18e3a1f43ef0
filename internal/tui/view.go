// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/sentiment-notes/internal/service"
	"github.com/MKhiriev/sentiment-notes/models"
)

const noteTextWidth = 60

func (m notesModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	if m.adding {
		body := m.form.View()
		if m.saving {
			body += "\n\n" + helpStyle.Render("Saving...")
		}
		return appStyle.Render(overlayBoxStyle.Render(body))
	}

	var b strings.Builder

	b.WriteString(renderHeader(m.view))
	b.WriteString("\n\n")
	b.WriteString(m.renderNotes())

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"↑/↓: select  n/→: next  p/←: prev  0-4: filter  a: add  c: copy  r: refresh  v: version  q: quit",
	))

	return appStyle.Render(b.String())
}

func renderHeader(v service.View) string {
	parts := []string{
		titleStyle.Render("Sentiment notes"),
		"filter: " + filterLabel(v.Filter),
		pageLabel(v.Page),
	}
	if v.Offline {
		parts = append(parts, offlineStyle.Render("offline"))
	}
	if v.Loading {
		parts = append(parts, helpStyle.Render("loading..."))
	}

	return strings.Join(parts, "  ") + "\n" + uiDivider
}

func (m notesModel) renderNotes() string {
	if len(m.view.Notes) == 0 {
		if m.view.Loading {
			return helpStyle.Render("Loading notes...") + "\n"
		}
		return helpStyle.Render("No notes yet. Press a to add one.") + "\n"
	}

	var b strings.Builder
	for i, n := range m.view.Notes {
		b.WriteString(renderNoteLine(n, i == m.idx))
		b.WriteString("\n")
	}
	return b.String()
}

func renderNoteLine(n models.Note, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	label := sentimentStyle(n.Sentiment).Width(9).Render(n.Sentiment.String())
	line := fmt.Sprintf("%s%s %s  %s",
		cursor,
		label,
		n.DateCreated.Local().Format("2006-01-02 15:04"),
		fitText(singleLine(n.Text), noteTextWidth),
	)

	if selected {
		return selectedStyle.Render(line)
	}
	return line
}

func filterLabel(s models.Sentiment) string {
	if s == "" {
		return "all"
	}
	return s.String()
}

func pageLabel(p service.PageState) string {
	page := p.PageIndex
	if page < 1 {
		page = 1
	}

	if p.EstimatedTotalPages == 0 {
		return fmt.Sprintf("page %d", page)
	}
	// the estimate comes from page 1 and can lag behind a longer scan
	return fmt.Sprintf("page %d of ~%d", page, max(page, p.EstimatedTotalPages))
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

