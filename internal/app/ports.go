package app

import "github.com/texstream/texevents/internal/domain/event"

// Config holds configuration values passed from the input adapter.
type Config struct {
	OutputFile string
}

// InputProvider defines the input port for retrieving the markup string
// to parse and its associated configuration.
type InputProvider interface {
	GetInput() (markup string, config Config, err error)
}

// EventWriter defines the output port events are streamed to as they
// are produced, one at a time, in order.
type EventWriter interface {
	WriteEvent(ev event.Event) error
	Close() error
}
