package log_repository

import (
	"context"
	"time"

	"github.com/mohadmed-adel/firebase-query-server/internal/model/data"
)

// LogRepository is the narrow access layer over the geofence log collection.
// Every read returns records ordered by timestamp descending; the only
// predicate pushed down to the store is the timestamp range, everything else
// is filtered in memory by the service on top of a bounded working set.
type LogRepository interface {
	// FetchRecent returns up to limit records, resuming strictly after the
	// record identified by startAfter when it is non-empty. The second result
	// is the hasMore heuristic: true iff exactly limit records came back. At
	// an exact collection-size boundary this reports true with an empty next
	// page; callers must treat it as "likely more", not a guarantee.
	FetchRecent(ctx context.Context, limit int, startAfter string) ([]data.GeofenceLog, bool, error)

	// FetchRange returns records with timestamp in [start, end] inclusive,
	// capped at limit.
	FetchRange(ctx context.Context, start, end time.Time, limit int) ([]data.GeofenceLog, error)

	// FetchAll returns up to cap records; cap <= 0 means the whole
	// collection (the statistics path must never truncate).
	FetchAll(ctx context.Context, cap int) ([]data.GeofenceLog, error)

	// DeleteAll removes every record present in a single id snapshot, in
	// chunks. On a mid-way failure the returned count reflects only the
	// committed chunks and the error is surfaced; there is no rollback.
	DeleteAll(ctx context.Context) (int64, error)
}
