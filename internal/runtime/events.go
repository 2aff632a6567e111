package runtime

// Attribute is a single key/value pair attached to an event.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is a notification emitted by a module while processing a call or a tick.
type Event struct {
	Tick       Tick        `json:"tick"`
	Module     string      `json:"module"`
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

func NewEvent(module, eventType string, attributes ...Attribute) Event {
	return Event{Module: module, Type: eventType, Attributes: attributes}
}

func NewAttribute(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Attribute returns the value of the first attribute with the given key.
func (e Event) Attribute(key string) (string, bool) {
	for _, attribute := range e.Attributes {
		if attribute.Key == key {
			return attribute.Value, true
		}
	}
	return "", false
}

// EventSink receives every event the runtime records.
type EventSink interface {
	Emit(event Event)
}

// EventEmitter is what modules use to record events.
type EventEmitter interface {
	EmitEvent(event Event)
}
