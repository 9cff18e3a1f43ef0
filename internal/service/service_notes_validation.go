// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sentiment-notes/internal/validators"
	"github.com/MKhiriev/sentiment-notes/models"
)

// NoteValidationService normalizes and validates requests before passing
// them to the wrapped [NoteService].
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, input models.CreateNoteInput) (models.Note, error) {
	input = normalizeCreateInput(input)

	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}

	return v.inner.CreateNote(ctx, input)
}

func (v *NoteValidationService) GetNotes(ctx context.Context, query models.NotesQuery) (models.NotesPage, error) {
	query = normalizeNotesQuery(query)

	if err := v.validator.Validate(ctx, query); err != nil {
		return models.NotesPage{}, fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}

	return v.inner.GetNotes(ctx, query)
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}
