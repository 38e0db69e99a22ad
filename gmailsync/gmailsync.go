// SPDX-License-Identifier: GPL-3.0-or-later
package gmailsync

import (
	"fmt"
	"time"

	"github.com/mailflip/go-imap-gmailsync/domain"
	"github.com/mailflip/go-imap-gmailsync/log"
	"github.com/mailflip/go-imap-gmailsync/mail"

	"github.com/sirupsen/logrus"
)

const (
	DefaultBatchSize     = 100
	DefaultBatchMaxBytes = 50 << 20
	SearchWindow         = 1000
)

type GmailSync struct {
	store  domain.CursorStore
	source domain.SourceConnector
	dest   domain.DestConnector

	configuration *configuration

	l *logrus.Logger
}

func NewGmailSync(store domain.CursorStore, source domain.SourceConnector, dest domain.DestConnector, configFunc ...ConfigFunc) (*GmailSync, error) {
	config := &configuration{
		BatchSize:     DefaultBatchSize,
		BatchMaxBytes: DefaultBatchMaxBytes,
	}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &GmailSync{
		store:         store,
		source:        source,
		dest:          dest,
		configuration: config,
		l:             log.Logger(log.LOG_GMAILSYNC),
	}, nil
}

// Sync transfers all mails above the stored watermark from the source folder
// into the destination folder and checkpoints progress after every batch. A
// crashed or aborted run resumes behind the last checkpoint, so a mail is
// never lost but may be appended twice. When a fatal error cuts the run
// short after transfers began, the report of the completed part is returned
// alongside the error.
func (gs *GmailSync) Sync(account string, sourceFolder string, destFolder string) (*domain.SyncReport, error) {
	status, err := gs.source.Select(sourceFolder, true)
	if err != nil {
		return nil, fmt.Errorf("could not select folder %s: %w", sourceFolder, err)
	}

	cursor, err := gs.store.LoadCursor(account, sourceFolder)
	if err != nil {
		return nil, fmt.Errorf("could not load cursor: %w", err)
	}

	baseLogger := gs.l.WithFields(logrus.Fields{"account": account, "folder": sourceFolder})
	baseLogger.WithFields(logrus.Fields{"lastuid": cursor.LastUid, "uidvalidity": cursor.UidValidity}).Debug("Loaded cursor")

	var retryUids []uint32
	if cursor.UidValidity != 0 && cursor.UidValidity != status.UidValidity {
		baseLogger.WithFields(logrus.Fields{"known": cursor.UidValidity, "server": status.UidValidity}).Warn("Folder uidvalidity changed, all mails will be transferred again")
		cursor.LastUid = 0
		if !gs.configuration.DryRun {
			err = gs.store.ClearRetries(account, sourceFolder)
			if err != nil {
				return nil, fmt.Errorf("could not clear retries: %w", err)
			}
		}
	} else {
		retryUids, err = gs.store.PendingRetries(account, sourceFolder)
		if err != nil {
			return nil, fmt.Errorf("could not load pending retries: %w", err)
		}

		if len(retryUids) > 0 {
			baseLogger.WithField("retries", len(retryUids)).Info("Retrying previously failed mails")
		}
	}
	cursor.UidValidity = status.UidValidity

	if !gs.configuration.DryRun {
		err = gs.dest.EnsureFolder(destFolder)
		if err != nil {
			return nil, fmt.Errorf("could not prepare destination folder %s: %w", destFolder, err)
		}
	}

	planner := newBatchPlanner(gs.source, gs.configuration, retryUids, cursor.LastUid, status.UidNext, gs.l)

	report := &domain.SyncReport{}
	batches := 0
	for {
		batch, err := planner.next()
		if err != nil {
			return report, fmt.Errorf("could not plan batch: %w", err)
		}
		if batch == nil {
			break
		}
		batches++

		resolved := planner.resolvedUids()
		report.Skipped += len(planner.skippedUids())

		if gs.configuration.DryRun {
			baseLogger.WithFields(logrus.Fields{"batchsize": len(batch.Refs), "bytes": batch.Bytes()}).Info("Not transferring batch due to dry-run")
			report.Transferred += len(batch.Refs)
			continue
		}

		start := time.Now()
		baseLogger.WithFields(logrus.Fields{"batchsize": len(batch.Refs), "bytes": batch.Bytes()}).Debug("Transferring batch")

		newLast := cursor.LastUid
		failed := []uint32{}
		for _, ref := range batch.Refs {
			result := gs.transferMail(ref, destFolder)
			report.Add(result.Outcome)

			if result.Failed() {
				failed = append(failed, ref.Uid)
				continue
			}

			if ref.Uid > newLast {
				newLast = ref.Uid
			}
			if ref.Retry {
				resolved = append(resolved, ref.Uid)
			}
		}

		// failures above the new watermark are found again by the next run's
		// search, everything below goes to the retry ledger
		ledgered := []uint32{}
		for _, uid := range failed {
			if uid <= newLast {
				ledgered = append(ledgered, uid)
			}
		}

		cursor.LastUid = newLast
		err = gs.store.Checkpoint(cursor, resolved, ledgered)
		if err != nil {
			return report, fmt.Errorf("could not checkpoint batch: %w", err)
		}

		baseLogger.WithFields(logrus.Fields{"duration": time.Since(start), "batchsize": len(batch.Refs), "lastuid": cursor.LastUid, "failed": len(failed)}).Info("Transferred batch")
	}

	report.Skipped += len(planner.skippedUids())
	finalResolved := planner.resolvedUids()

	if batches == 0 {
		baseLogger.Info("Folder contains no new mails")
	}

	if !gs.configuration.DryRun {
		if len(finalResolved) > 0 {
			err = gs.store.Checkpoint(cursor, finalResolved, nil)
			if err != nil {
				return report, fmt.Errorf("could not checkpoint: %w", err)
			}
		} else if batches == 0 {
			// keep the uidvalidity on record current even when nothing moved
			err = gs.store.SaveCursor(cursor)
			if err != nil {
				return report, fmt.Errorf("could not save cursor: %w", err)
			}
		}
	}

	return report, nil
}

func (gs *GmailSync) transferMail(ref *domain.MessageRef, destFolder string) *domain.TransferResult {
	m, err := gs.source.FetchMail(ref.Uid)
	if err != nil {
		gs.l.WithFields(logrus.Fields{"uid": ref.Uid, "error": err}).Warn("Could not fetch mail")
		return &domain.TransferResult{Ref: ref, Outcome: domain.OutcomeFetchFailed, Err: err}
	}
	if m == nil {
		gs.l.WithFields(logrus.Fields{"uid": ref.Uid}).Debug("Mail vanished before transfer")
		return &domain.TransferResult{Ref: ref, Outcome: domain.OutcomeSkipped}
	}

	appendedUid, err := gs.dest.Append(destFolder, m.Raw, m.InternalDate)
	if err != nil {
		gs.l.WithFields(logrus.Fields{"uid": ref.Uid, "subject": mail.ShortSubject(m.Subject), "error": err}).Warn("Could not append mail")
		return &domain.TransferResult{Ref: ref, Outcome: domain.OutcomeAppendFailed, Err: err}
	}

	gs.l.WithFields(logrus.Fields{"uid": ref.Uid, "appendeduid": appendedUid, "subject": mail.ShortSubject(m.Subject)}).Debug("Transferred mail")
	return &domain.TransferResult{Ref: ref, Outcome: domain.OutcomeTransferred}
}
