package logger

import (
	"context"
	"time"

	"github.com/mohadmed-adel/firebase-query-server/internal/helper"
	"github.com/mohadmed-adel/firebase-query-server/internal/model/data"

	"go.mongodb.org/mongo-driver/mongo"
)

// QueryLogService records store operations (name, duration, error) into the
// query_trace collection. A nil service disables tracing, which keeps test
// doubles free of any mongo dependency.
type QueryLogService struct {
	TraceCollection *mongo.Collection
}

func NewQueryLogService(traceCollection *mongo.Collection) *QueryLogService {
	return &QueryLogService{
		TraceCollection: traceCollection,
	}
}

func (q *QueryLogService) Trace(ctx context.Context, operation string, begin time.Time, opErr error) {
	if q == nil || q.TraceCollection == nil {
		return
	}

	entry := data.LogEntry{
		Timestamp: helper.GetCurrentTime().Format(time.RFC3339),
		Level:     "trace",
		Message:   "Executed store operation",
		Operation: operation,
		Duration:  time.Since(begin).Milliseconds(),
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}

	if _, err := q.TraceCollection.InsertOne(ctx, entry); err != nil {
		AppLogger.Warn().Err(err).Str("operation", operation).Msg("Failed to insert query trace entry")
	}
}
