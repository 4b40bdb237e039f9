package data

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeofenceLog is one geofence event document from the
// geofence_essential_logs collection. The ingestion side writes an open set
// of event-specific fields, so anything beyond the known ones lands in Extra
// and is preserved verbatim.
type GeofenceLog struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty"`
	Timestamp time.Time              `bson:"timestamp"`
	EventType string                 `bson:"eventType,omitempty"`
	UserID    string                 `bson:"userId,omitempty"`
	Platform  string                 `bson:"platform,omitempty"`
	Extra     map[string]interface{} `bson:",inline"`
}

// ToResponse flattens the document into the wire shape: extra fields first,
// then the known fields, with the store timestamp normalized to an ISO-8601
// string. The native timestamp never leaves the service.
func (g GeofenceLog) ToResponse() map[string]interface{} {
	item := make(map[string]interface{}, len(g.Extra)+5)
	for k, v := range g.Extra {
		item[k] = v
	}
	item["id"] = g.ID.Hex()
	item["timestamp"] = g.Timestamp.UTC().Format(time.RFC3339)
	if g.EventType != "" {
		item["eventType"] = g.EventType
	}
	if g.UserID != "" {
		item["userId"] = g.UserID
	}
	if g.Platform != "" {
		item["platform"] = g.Platform
	}
	return item
}
