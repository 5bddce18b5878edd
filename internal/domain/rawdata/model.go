package rawdata

import "time"

// Payload is one raw provider response, archived verbatim before any
// parsing so a pipeline run can be replayed or audited later.
type Payload struct {
	ID        int64     `db:"id"`
	Source    string    `db:"source"`
	EntityKey string    `db:"entity_key"`
	Body      []byte    `db:"payload"`
	FetchedAt time.Time `db:"fetched_at"`
}
