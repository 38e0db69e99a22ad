// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/imap.go -package=mocks . SourceConnector,DestConnector

// FolderStatus is the subset of the SELECT response the engine relies on.
type FolderStatus struct {
	Name        string
	UidValidity uint32
	UidNext     uint32
	Messages    uint32
}

// MessageRef identifies one candidate message on the source. Retry marks
// refs replanned from the persisted retry ledger rather than found by a
// fresh server search.
type MessageRef struct {
	Uid          uint32
	InternalDate time.Time
	Size         uint32
	Retry        bool
}

type RawMail struct {
	Uid          uint32
	InternalDate time.Time
	Subject      string
	Raw          []byte
}

type SourceConnector interface {
	Select(folder string, readonly bool) (*FolderStatus, error)
	SearchUids(low, high uint32, since time.Time) ([]uint32, error)
	FetchRefs(uids []uint32) ([]*MessageRef, error)
	// FetchMail returns nil, nil when the uid no longer exists in the
	// selected folder.
	FetchMail(uid uint32) (*RawMail, error)

	Close() error
}

type DestConnector interface {
	EnsureFolder(folder string) error
	// Append stores the raw message with the given date as its internal
	// date and returns the destination uid, or 0 when the server does not
	// support UIDPLUS.
	Append(folder string, raw []byte, date time.Time) (uint32, error)

	Close() error
}
