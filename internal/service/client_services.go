// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/sentiment-notes/internal/adapter"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/store"
)

type ClientServices struct {
	NotesBrowser NotesBrowser
}

func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteSource, pageSize int, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		NotesBrowser: NewNotesBrowser(remote, storages.LocalFallbackStore, pageSize, logger),
	}
}
