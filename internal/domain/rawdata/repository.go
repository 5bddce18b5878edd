package rawdata

import "context"

// Repository archives raw provider payloads. Implementations must upsert on
// (source, entity_key) so re-running a pipeline refreshes the archive
// instead of growing it.
type Repository interface {
	UpsertMany(ctx context.Context, payloads []Payload) error
	GetByEntityKey(ctx context.Context, source, entityKey string) (Payload, error)
}
