// SPDX-License-Identifier: GPL-3.0-or-later
package domain

// TransferOutcome classifies the fate of a single message within a run.
type TransferOutcome int

const (
	OutcomeTransferred  = TransferOutcome(0)
	OutcomeSkipped      = TransferOutcome(1)
	OutcomeFetchFailed  = TransferOutcome(10)
	OutcomeAppendFailed = TransferOutcome(11)
)

type TransferResult struct {
	Ref     *MessageRef
	Outcome TransferOutcome
	Err     error
}

func (r *TransferResult) Failed() bool {
	return r.Outcome == OutcomeFetchFailed || r.Outcome == OutcomeAppendFailed
}

// Batch is an ordered run of refs transferred and checkpointed as one unit.
type Batch struct {
	Refs []*MessageRef
}

func (b *Batch) Uids() []uint32 {
	uids := make([]uint32, len(b.Refs))
	for i, ref := range b.Refs {
		uids[i] = ref.Uid
	}
	return uids
}

func (b *Batch) Bytes() int64 {
	total := int64(0)
	for _, ref := range b.Refs {
		total += int64(ref.Size)
	}
	return total
}

// SyncReport aggregates the per-message outcomes of one run.
type SyncReport struct {
	Transferred int
	Skipped     int
	Failed      int
}

func (r *SyncReport) Add(outcome TransferOutcome) {
	switch outcome {
	case OutcomeTransferred:
		r.Transferred++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFetchFailed, OutcomeAppendFailed:
		r.Failed++
	}
}
