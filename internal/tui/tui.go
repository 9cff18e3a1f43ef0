// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal note browser on top of bubbletea.
//
// The model never talks to the network directly: every page fetch and note
// write goes through [service.NotesBrowser] inside a tea.Cmd, and results
// come back as messages carrying a [service.View].
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/service"
	"github.com/MKhiriev/sentiment-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by Run when the user closes the program.
var ErrUserQuit = errors.New("user quit")

// TUI owns the bubbletea program for one client session.
type TUI struct {
	program *tea.Program
	logger  *logger.Logger
}

// New builds the program around browser. The program is not started until
// Run is called.
func New(ctx context.Context, browser service.NotesBrowser, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	model := newNotesModel(ctx, browser, buildInfo)

	return &TUI{
		program: tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)),
		logger:  logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run() error {
	finalModel, err := t.program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui program failed")
		return err
	}

	if result, ok := finalModel.(notesModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// Notify delivers a background refresh result to the running program.
// It is safe to call from any goroutine.
func (t *TUI) Notify(view service.View) {
	t.program.Send(refreshedMsg{view: view})
}
