package pipeline

import (
	"fmt"

	"github.com/marcodd23/go-copy-core/pkg/copyx"
	"github.com/marcodd23/go-copy-core/pkg/utilx"
)

// PipeEvent - pipeline message payload interface.
type PipeEvent interface {
	GetEventId() string
}

// An Event wraps an arbitrary payload graph and message attributes. Events
// handed to concurrent pipeline workers are isolated with the deep-copy
// engine, so stages can read nested payload structure without racing on
// shared sub-objects.
type Event struct {
	eventId    string
	payload    map[string]any
	attributes map[string]string
}

// NewEvent creates a new Event with a generated event id.
func NewEvent(payload map[string]any, attributes map[string]string) Event {
	return NewEventWithId(utilx.GenerateUUID().String(), payload, attributes)
}

// NewEventWithId creates a new Event with the given event id.
func NewEventWithId(eventId string, payload map[string]any, attributes map[string]string) Event {
	return Event{
		eventId:    eventId,
		payload:    payload,
		attributes: attributes,
	}
}

func (e Event) GetEventId() string {
	return e.eventId
}

// Copy returns a fully independent copy of the event. Shared sub-objects and
// cycles inside the payload graph survive the copy with their topology intact.
func (e Event) Copy() Event {
	return copyx.MustCopy(e)
}

// GetPayload returns an isolated copy of the payload graph.
func (e Event) GetPayload() map[string]any {
	return copyx.MustCopy(e.payload)
}

// GetAttributes returns an isolated copy of the event attributes.
func (e Event) GetAttributes() map[string]string {
	return copyx.MustCopy(e.attributes)
}

// AddAttribute adds an attribute to a copy of the original event to keep the
// original instance unchanged.
// It will throw an error if the attribute key already exists.
func (e Event) AddAttribute(key, value string) (Event, error) {
	_, found := e.attributes[key]
	if found {
		return e, fmt.Errorf("attribute key (%v) already exists", key)
	}

	event := e.Copy()
	if event.attributes == nil {
		event.attributes = make(map[string]string, 1)
	}

	event.attributes[key] = value

	return event, nil
}

// WithPayloadValue sets a top-level payload entry on a copy of the original
// event, leaving the original unchanged.
func (e Event) WithPayloadValue(key string, value any) Event {
	event := e.Copy()
	if event.payload == nil {
		event.payload = make(map[string]any, 1)
	}

	event.payload[key] = value

	return event
}
