package log_repository

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestChunkObjectIDs(t *testing.T) {
	ids := make([]primitive.ObjectID, 1200)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
	}

	chunks := chunkObjectIDs(ids, deleteChunkSize)
	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks for 1200 ids, got %d", len(chunks))
	}
	if len(chunks[0]) != 500 || len(chunks[1]) != 500 || len(chunks[2]) != 200 {
		t.Errorf("Unexpected chunk sizes: %d, %d, %d", len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}

	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	if total != len(ids) {
		t.Errorf("Chunks must cover every id, got %d of %d", total, len(ids))
	}
}

func TestChunkObjectIDsSmallInput(t *testing.T) {
	ids := []primitive.ObjectID{primitive.NewObjectID()}

	chunks := chunkObjectIDs(ids, deleteChunkSize)
	if len(chunks) != 1 || len(chunks[0]) != 1 {
		t.Fatalf("Expected a single one-element chunk, got %v", chunks)
	}

	if got := chunkObjectIDs(nil, deleteChunkSize); len(got) != 0 {
		t.Errorf("Expected no chunks for no ids, got %d", len(got))
	}
}

func TestAfterPositionFilter(t *testing.T) {
	ts := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	id := primitive.NewObjectID()

	filter := afterPositionFilter(ts, id)

	branches, ok := filter["$or"].(bson.A)
	if !ok || len(branches) != 2 {
		t.Fatalf("Expected an $or with two branches, got %v", filter)
	}

	older := branches[0].(bson.M)
	if _, ok := older["timestamp"].(bson.M)["$lt"]; !ok {
		t.Error("First branch must select strictly older timestamps")
	}

	tie := branches[1].(bson.M)
	if tie["timestamp"] != ts {
		t.Error("Tie branch must pin the anchor timestamp")
	}
	if _, ok := tie["_id"].(bson.M)["$lt"]; !ok {
		t.Error("Tie branch must break ties on _id")
	}
}
