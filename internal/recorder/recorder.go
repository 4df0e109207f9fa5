package recorder

// PublishEvent records where one group's dashboard was delivered.
type PublishEvent struct {
	Group     string
	Period    string
	ObjectKey string
	Location  string
	Fallback  bool
	Bytes     int
	Charts    int
}

// Recorder persists publish history for later inspection.
type Recorder interface {
	RecordPublish(evt *PublishEvent) error
	Close() error
}
