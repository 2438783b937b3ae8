package domain

import "time"

// StoredModel is a persisted, serialized TopicModel. The blob is treated as
// opaque by storage; only the classifier decodes it.
type StoredModel struct {
	TrainedAt time.Time `db:"trained_at"`
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Blob      []byte    `db:"model"`
}
