// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
// They are the Go struct field names as seen by validator/v10.
const (
	FieldID        = "ID"
	FieldText      = "Text"
	FieldSentiment = "Sentiment"
	FieldLimit     = "Limit"
)

// sentimentTag is the custom validation tag accepting canonical sentiments.
const sentimentTag = "sentiment"

// fieldErrors maps a failing struct field to the sentinel error reported for
// it.
var fieldErrors = map[string]error{
	FieldID:        ErrInvalidNoteID,
	FieldText:      ErrInvalidText,
	FieldSentiment: ErrInvalidSentiment,
	FieldLimit:     ErrInvalidLimit,
}

// NoteValidator implements the Validator interface for note models:
// Note, CreateNoteInput and NotesQuery. Rules are declared with validate
// struct tags on the models and evaluated by go-playground/validator.
type NoteValidator struct {
	validate *validator.Validate
}

func NewNoteValidator() Validator {
	v := validator.New()
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(sentimentTag, func(fl validator.FieldLevel) bool {
		return models.Sentiment(fl.Field().String()).Valid()
	})

	return &NoteValidator{validate: v}
}

// Validate validates obj. When fields are given only those struct fields are
// checked.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateStruct(ctx, &value, fields...)
	case *models.Note:
		return v.validateStruct(ctx, value, fields...)

	case models.CreateNoteInput:
		return v.validateStruct(ctx, &value, fields...)
	case *models.CreateNoteInput:
		return v.validateStruct(ctx, value, fields...)

	case models.NotesQuery:
		return v.validateStruct(ctx, &value, fields...)
	case *models.NotesQuery:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	for _, f := range fields {
		if _, ok := fieldErrors[f]; !ok {
			return ErrUnknownField
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation failed: %w", err)
	}

	first := validationErrors[0]
	if sentinel, ok := fieldErrors[first.StructField()]; ok {
		return fmt.Errorf("%w: failed on %q", sentinel, first.Tag())
	}

	return fmt.Errorf("validation failed on %s: %w", first.StructNamespace(), err)
}
