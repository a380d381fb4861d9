package models

import "time"

// RetryQueueItem schedules the next sync attempt of a note that failed.
//
// At most one item exists per note, and only while a retry is pending: the
// item is created on the first failure, rewritten with a recomputed backoff
// on every subsequent failure, and deleted on the note's next successful
// sync.
//
// RetryCount is independent of SyncState.RetryCount: the queue's counter
// drives the backoff curve and the failed-items cutoff.
type RetryQueueItem struct {
	NoteID           string
	VaultID          string
	RetryCount       int
	LastAttemptAt    time.Time
	NextRetryAt      time.Time
	LastErrorMessage string
}
