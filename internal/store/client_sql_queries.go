// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// localNotesSlot is the slot key holding the fallback notes. It cannot collide
// with a note id because ids are UUIDs.
const localNotesSlot = "notes-app-data"

const (
	getSlotPayload = `
		SELECT payload
		FROM local_slots
		WHERE slot_key = $1;`

	upsertSlotPayload = `
		INSERT INTO local_slots (slot_key, payload, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (slot_key) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = excluded.updated_at;`

	deleteSlot = `
		DELETE FROM local_slots
		WHERE slot_key = $1;`
)
