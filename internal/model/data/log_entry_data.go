package data

type LogEntry struct {
	Timestamp string `bson:"timestamp"`
	Level     string `bson:"level"`
	Message   string `bson:"message"`
	Operation string `bson:"operation,omitempty"`
	Error     string `bson:"error,omitempty"`
	Duration  int64  `bson:"duration,omitempty"` // Duration in milliseconds
}
