// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mailflip/go-imap-gmailsync/domain"
	"github.com/mailflip/go-imap-gmailsync/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

// CursorStore persists sync cursors and the retry ledger in a local sqlite file.
type CursorStore struct {
	db *sqlx.DB
	l  *logrus.Logger
}

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1-create-cursors",
			Up: []string{`CREATE TABLE cursors (
				account TEXT NOT NULL,
				folder TEXT NOT NULL,
				lastuid INTEGER NOT NULL DEFAULT 0,
				uidvalidity INTEGER NOT NULL DEFAULT 0,
				updatedat TIMESTAMP NOT NULL,
				PRIMARY KEY (account, folder)
			)`},
			Down: []string{`DROP TABLE cursors`},
		},
		{
			Id: "2-create-retries",
			Up: []string{`CREATE TABLE retries (
				account TEXT NOT NULL,
				folder TEXT NOT NULL,
				uid INTEGER NOT NULL,
				recordedat TIMESTAMP NOT NULL,
				PRIMARY KEY (account, folder, uid)
			)`},
			Down: []string{`DROP TABLE retries`},
		},
	},
}

// NewCursorStore opens or creates the sqlite database at the given datasource
// path and migrates it to the newest schema. Failures on a file that already
// existed are reported as domain.ErrStoreCorrupt.
func NewCursorStore(datasource string) (*CursorStore, error) {
	_, statErr := os.Stat(datasource)
	existed := statErr == nil

	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, storeErr(existed, fmt.Errorf("could not open db: %w", err))
	}
	// sqlite allows a single writer only
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		return nil, storeErr(existed, fmt.Errorf("could not set journal mode: %w", err))
	}
	if _, err := db.Exec(`PRAGMA synchronous=normal`); err != nil {
		return nil, storeErr(existed, fmt.Errorf("could not set synchronous mode: %w", err))
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return nil, storeErr(existed, fmt.Errorf("could not migrate to newest version: %w", err))
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &CursorStore{db: db, l: l}, nil
}

// storeErr marks failures on a pre-existing file as corruption so that callers
// can tell garbage on disk apart from an unwritable path.
func storeErr(existed bool, err error) error {
	if existed {
		return fmt.Errorf("%w: %v", domain.ErrStoreCorrupt, err)
	}
	return err
}

func (s *CursorStore) Close() error {
	return s.db.Close()
}

// LoadCursor returns the stored cursor for the account and folder. If none has
// been saved yet, a zero-valued cursor is returned.
func (s *CursorStore) LoadCursor(account, folder string) (*domain.SyncCursor, error) {
	dbCursor := struct {
		Account     string
		Folder      string
		LastUid     uint32
		UidValidity uint32
		UpdatedAt   time.Time
	}{}

	err := s.db.Get(
		&dbCursor,
		`SELECT account, folder, lastuid, uidvalidity, updatedat FROM cursors WHERE account = ? AND folder = ?`,
		account,
		folder,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.SyncCursor{Account: account, Folder: folder}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return &domain.SyncCursor{
		Account:     dbCursor.Account,
		Folder:      dbCursor.Folder,
		LastUid:     dbCursor.LastUid,
		UidValidity: dbCursor.UidValidity,
		UpdatedAt:   dbCursor.UpdatedAt,
	}, nil
}

// SaveCursor writes the cursor, replacing any previous row for the same
// account and folder. UpdatedAt is stamped with the current time.
func (s *CursorStore) SaveCursor(cursor *domain.SyncCursor) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO cursors (account, folder, lastuid, uidvalidity, updatedat) VALUES (?, ?, ?, ?, ?)`,
		cursor.Account,
		cursor.Folder,
		cursor.LastUid,
		cursor.UidValidity,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("could not save cursor: %w", err)
	}

	s.l.WithFields(logrus.Fields{
		"Account":     cursor.Account,
		"Folder":      cursor.Folder,
		"LastUid":     cursor.LastUid,
		"UidValidity": cursor.UidValidity,
	}).Debug("Saved cursor")

	return nil
}

// PendingRetries returns the uids recorded as failed for the account and
// folder, lowest first.
func (s *CursorStore) PendingRetries(account, folder string) ([]uint32, error) {
	uids := []uint32{}
	err := s.db.Select(
		&uids,
		`SELECT uid FROM retries WHERE account = ? AND folder = ? ORDER BY uid ASC`,
		account,
		folder,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}
	return uids, nil
}

// Checkpoint advances the cursor, resolves retries that succeeded and records
// retries that failed, all in a single transaction.
func (s *CursorStore) Checkpoint(cursor *domain.SyncCursor, resolved []uint32, failed []uint32) error {
	tx, err := s.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	now := time.Now().UTC()

	_, err = tx.Exec(
		`INSERT OR REPLACE INTO cursors (account, folder, lastuid, uidvalidity, updatedat) VALUES (?, ?, ?, ?, ?)`,
		cursor.Account,
		cursor.Folder,
		cursor.LastUid,
		cursor.UidValidity,
		now,
	)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not save cursor: %w", err))
	}

	if len(resolved) > 0 {
		qry, args, err := sqlx.In(
			`DELETE FROM retries WHERE account = ? AND folder = ? AND uid IN (?)`,
			cursor.Account,
			cursor.Folder,
			resolved,
		)
		if err != nil {
			return txEnd(tx, fmt.Errorf("could not expand query: %w", err))
		}
		if _, err := tx.Exec(qry, args...); err != nil {
			return txEnd(tx, fmt.Errorf("could not resolve retries: %w", err))
		}
	}

	if len(failed) > 0 {
		stmt, err := tx.Prepare(`INSERT OR REPLACE INTO retries (account, folder, uid, recordedat) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return txEnd(tx, fmt.Errorf("could not prepare statement: %w", err))
		}
		for _, uid := range failed {
			if _, err := stmt.Exec(cursor.Account, cursor.Folder, uid, now); err != nil {
				return txEnd(tx, fmt.Errorf("could not record retry: %w", err))
			}
		}
	}

	s.l.WithFields(logrus.Fields{
		"Account":  cursor.Account,
		"Folder":   cursor.Folder,
		"LastUid":  cursor.LastUid,
		"Resolved": len(resolved),
		"Failed":   len(failed),
	}).Debug("Checkpointed")

	return txEnd(tx, nil)
}

// ClearRetries drops all recorded retries for the account and folder. Used
// when the folder state has to be rebuilt after an uidvalidity change.
func (s *CursorStore) ClearRetries(account, folder string) error {
	_, err := s.db.Exec(`DELETE FROM retries WHERE account = ? AND folder = ?`, account, folder)
	if err != nil {
		return fmt.Errorf("could not clear retries: %w", err)
	}
	return nil
}

// txEnd commits the transaction if err is nil, otherwise rolls back and
// reports the original error.
func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("could not commit transaction: %w", commitErr)
		}
		return nil
	}

	if rollbackErr := tx.Rollback(); rollbackErr != nil {
		return fmt.Errorf("could not rollback transaction after error %v: %w", err, rollbackErr)
	}
	return err
}
