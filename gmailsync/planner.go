// SPDX-License-Identifier: GPL-3.0-or-later
package gmailsync

import (
	"fmt"
	"sort"
	"time"

	"github.com/mailflip/go-imap-gmailsync/domain"

	"github.com/sirupsen/logrus"
)

// batchPlanner lazily turns the uid space above the watermark into transfer
// batches. It never holds more than one search window of refs in memory:
// uids are enumerated in bounded ranges, their metadata is prefetched and
// batches are cut by count and by cumulative size. Uids from the retry
// ledger are planned before any new mail.
type batchPlanner struct {
	source domain.SourceConnector

	batchSize int
	maxBytes  int64
	after     time.Time

	retryUids []uint32
	nextUid   uint32
	uidNext   uint32
	done      bool

	pending  []*domain.MessageRef
	skipped  []uint32
	resolved []uint32

	l *logrus.Logger
}

func newBatchPlanner(source domain.SourceConnector, config *configuration, retryUids []uint32, lastUid, uidNext uint32, l *logrus.Logger) *batchPlanner {
	return &batchPlanner{
		source:    source,
		batchSize: config.BatchSize,
		maxBytes:  config.BatchMaxBytes,
		after:     config.After,
		retryUids: retryUids,
		nextUid:   lastUid + 1,
		uidNext:   uidNext,
		l:         l,
	}
}

// next returns the next batch, or nil once the uid space is exhausted.
func (p *batchPlanner) next() (*domain.Batch, error) {
	for {
		if batch := p.cut(p.done); batch != nil {
			return batch, nil
		}
		if p.done {
			return nil, nil
		}

		err := p.fill()
		if err != nil {
			return nil, err
		}
	}
}

// skippedUids returns the uids that vanished from the folder before they
// could be planned and clears the list.
func (p *batchPlanner) skippedUids() []uint32 {
	skipped := p.skipped
	p.skipped = nil
	return skipped
}

// resolvedUids returns the retry ledger uids that vanished from the folder
// and therefore need no further retries, and clears the list.
func (p *batchPlanner) resolvedUids() []uint32 {
	resolved := p.resolved
	p.resolved = nil
	return resolved
}

// cut slices a batch off the pending refs. Without flush it only cuts full
// batches and leaves a short remainder for the next fill. A single ref larger
// than maxBytes becomes a batch of its own.
func (p *batchPlanner) cut(flush bool) *domain.Batch {
	if len(p.pending) == 0 {
		return nil
	}

	count := 0
	size := int64(0)
	for _, ref := range p.pending {
		if count == p.batchSize {
			break
		}
		if count > 0 && size+int64(ref.Size) > p.maxBytes {
			break
		}
		count++
		size += int64(ref.Size)
	}

	if count == len(p.pending) && count < p.batchSize && !flush {
		return nil
	}

	batch := &domain.Batch{Refs: p.pending[:count:count]}
	p.pending = p.pending[count:]
	return batch
}

// fill prefetches the next slice of refs: first any queued retries, then the
// next search window of new uids.
func (p *batchPlanner) fill() error {
	if len(p.retryUids) > 0 {
		uids := p.retryUids
		if len(uids) > SearchWindow {
			uids, p.retryUids = uids[:SearchWindow], uids[SearchWindow:]
		} else {
			p.retryUids = nil
		}
		return p.prefetch(uids, true)
	}

	if p.nextUid >= p.uidNext {
		p.done = true
		return nil
	}

	low := p.nextUid
	high := low + SearchWindow - 1
	if high < low || high >= p.uidNext {
		high = p.uidNext - 1
	}
	p.nextUid = high + 1

	uids, err := p.source.SearchUids(low, high, p.after)
	if err != nil {
		return fmt.Errorf("could not search uid range %d:%d: %w", low, high, err)
	}

	p.l.WithFields(logrus.Fields{"low": low, "high": high, "found": len(uids)}).Debug("Enumerated uid range")
	if len(uids) == 0 {
		return nil
	}

	return p.prefetch(uids, false)
}

func (p *batchPlanner) prefetch(uids []uint32, retry bool) error {
	refs, err := p.source.FetchRefs(uids)
	if err != nil {
		return fmt.Errorf("could not prefetch mail infos: %w", err)
	}

	seen := make(map[uint32]bool, len(refs))
	for _, ref := range refs {
		ref.Retry = retry
		seen[ref.Uid] = true
	}

	for _, uid := range uids {
		if !seen[uid] {
			p.l.WithField("uid", uid).Debug("Mail vanished before planning")
			p.skipped = append(p.skipped, uid)
			if retry {
				p.resolved = append(p.resolved, uid)
			}
		}
	}

	// batches advance the watermark, so they have to be cut in uid order
	sort.Slice(refs, func(i, j int) bool { return refs[i].Uid < refs[j].Uid })
	p.pending = append(p.pending, refs...)
	return nil
}
