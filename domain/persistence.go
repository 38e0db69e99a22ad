// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . CursorStore

// SyncCursor is the durable transfer position for one (account, folder)
// pair. LastUid is the watermark: every uid at or below it has been
// appended to the destination, except uids recorded in the retry ledger.
type SyncCursor struct {
	Account     string
	Folder      string
	LastUid     uint32
	UidValidity uint32
	UpdatedAt   time.Time
}

type CursorStore interface {
	Close() error
	// LoadCursor returns a zero-valued cursor when no row exists yet.
	LoadCursor(account, folder string) (*SyncCursor, error)
	SaveCursor(cursor *SyncCursor) error
	PendingRetries(account, folder string) ([]uint32, error)
	// Checkpoint writes the cursor, removes resolved retry uids and
	// records failed ones in a single transaction.
	Checkpoint(cursor *SyncCursor, resolved []uint32, failed []uint32) error
	ClearRetries(account, folder string) error
}
