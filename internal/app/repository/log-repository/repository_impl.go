package log_repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mohadmed-adel/firebase-query-server/internal/logger"
	"github.com/mohadmed-adel/firebase-query-server/internal/model/data"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	LogCollectionName   = "geofence_essential_logs"
	TraceCollectionName = "query_trace"

	// deleteChunkSize bounds one DeleteMany call during a bulk clear.
	deleteChunkSize = 500
)

// ErrCursorNotFound reports a startAfter cursor that does not resolve to an
// existing record.
var ErrCursorNotFound = errors.New("pagination cursor not found")

type LogRepositoryImpl struct {
	Collection *mongo.Collection
	QueryLog   *logger.QueryLogService
}

func NewLogRepository(db *mongo.Database, queryLog *logger.QueryLogService) LogRepository {
	return &LogRepositoryImpl{
		Collection: db.Collection(LogCollectionName),
		QueryLog:   queryLog,
	}
}

// descending timestamp order, ties broken by insertion order (_id).
var recentSort = bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}

func (r *LogRepositoryImpl) FetchRecent(ctx context.Context, limit int, startAfter string) ([]data.GeofenceLog, bool, error) {
	begin := time.Now()

	filter := bson.M{}
	if startAfter != "" {
		cursorID, err := primitive.ObjectIDFromHex(startAfter)
		if err != nil {
			return nil, false, ErrCursorNotFound
		}
		var anchor data.GeofenceLog
		err = r.Collection.FindOne(ctx, bson.M{"_id": cursorID}).Decode(&anchor)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, false, ErrCursorNotFound
			}
			r.QueryLog.Trace(ctx, "fetch_recent", begin, err)
			return nil, false, fmt.Errorf("fetch recent: resolve cursor: %w", err)
		}
		filter = afterPositionFilter(anchor.Timestamp, anchor.ID)
	}

	opts := options.Find().SetSort(recentSort).SetLimit(int64(limit))
	logs, err := r.find(ctx, filter, opts)
	r.QueryLog.Trace(ctx, "fetch_recent", begin, err)
	if err != nil {
		return nil, false, fmt.Errorf("fetch recent: %w", err)
	}

	// Heuristic: a full page means there is likely more. An exact-count
	// boundary is indistinguishable without an extra probe.
	return logs, len(logs) == limit, nil
}

func (r *LogRepositoryImpl) FetchRange(ctx context.Context, start, end time.Time, limit int) ([]data.GeofenceLog, error) {
	begin := time.Now()

	filter := bson.M{"timestamp": bson.M{"$gte": start, "$lte": end}}
	opts := options.Find().SetSort(recentSort).SetLimit(int64(limit))

	logs, err := r.find(ctx, filter, opts)
	r.QueryLog.Trace(ctx, "fetch_range", begin, err)
	if err != nil {
		return nil, fmt.Errorf("fetch range: %w", err)
	}
	return logs, nil
}

func (r *LogRepositoryImpl) FetchAll(ctx context.Context, cap int) ([]data.GeofenceLog, error) {
	begin := time.Now()

	opts := options.Find().SetSort(recentSort)
	if cap > 0 {
		opts.SetLimit(int64(cap))
	}

	logs, err := r.find(ctx, bson.M{}, opts)
	r.QueryLog.Trace(ctx, "fetch_all", begin, err)
	if err != nil {
		return nil, fmt.Errorf("fetch all: %w", err)
	}
	return logs, nil
}

func (r *LogRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	begin := time.Now()

	// One id snapshot; records inserted after this read may survive.
	idOpts := options.Find().SetProjection(bson.M{"_id": 1})
	cur, err := r.Collection.Find(ctx, bson.M{}, idOpts)
	if err != nil {
		r.QueryLog.Trace(ctx, "delete_all", begin, err)
		return 0, fmt.Errorf("delete all: snapshot ids: %w", err)
	}

	var idDocs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &idDocs); err != nil {
		r.QueryLog.Trace(ctx, "delete_all", begin, err)
		return 0, fmt.Errorf("delete all: snapshot ids: %w", err)
	}

	if len(idDocs) == 0 {
		r.QueryLog.Trace(ctx, "delete_all", begin, nil)
		return 0, nil
	}

	ids := make([]primitive.ObjectID, 0, len(idDocs))
	for _, doc := range idDocs {
		ids = append(ids, doc.ID)
	}

	var deleted int64
	for _, chunk := range chunkObjectIDs(ids, deleteChunkSize) {
		res, err := r.Collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": chunk}})
		if res != nil {
			deleted += res.DeletedCount
		}
		if err != nil {
			r.QueryLog.Trace(ctx, "delete_all", begin, err)
			return deleted, fmt.Errorf("delete all: %w", err)
		}
	}

	r.QueryLog.Trace(ctx, "delete_all", begin, nil)
	return deleted, nil
}

func (r *LogRepositoryImpl) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]data.GeofenceLog, error) {
	cur, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	logs := make([]data.GeofenceLog, 0)
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// afterPositionFilter selects records strictly after the anchor position in
// the (timestamp desc, _id desc) ordering.
func afterPositionFilter(ts time.Time, id primitive.ObjectID) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"timestamp": bson.M{"$lt": ts}},
			bson.M{"timestamp": ts, "_id": bson.M{"$lt": id}},
		},
	}
}

func chunkObjectIDs(ids []primitive.ObjectID, size int) [][]primitive.ObjectID {
	if size <= 0 {
		return [][]primitive.ObjectID{ids}
	}
	chunks := make([][]primitive.ObjectID, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
