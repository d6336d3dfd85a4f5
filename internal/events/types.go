package events

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// Topic names the signal being published.
type Topic string

const (
	// TopicDataChanged fires after any mutating operation.
	TopicDataChanged Topic = "data-changed"
	// TopicDataLoaded fires once the initial load from the store completes.
	TopicDataLoaded Topic = "data-loaded"
)

// Change is the payload of a data-changed signal.
type Change struct {
	Collection string `msgpack:"collection"`
	Op         string `msgpack:"op"`
	ID         string `msgpack:"id,omitempty"`
}
