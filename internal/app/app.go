package app

import (
	"fmt"

	"github.com/texstream/texevents/internal/domain/event"
	"github.com/texstream/texevents/internal/domain/texparse"
	"github.com/texstream/texevents/internal/storage"
)

// TexEventsService is a convenience facade beside ApplicationService: it
// parses a markup string straight to a slice of events without going
// through the input/output ports, for callers that already have the
// string in hand (tests, embedding, a REPL).
type TexEventsService struct {
	arena *storage.Storage
}

// NewTexEventsService creates a new facade instance, owning its own
// arena for any synthesized content produced while parsing.
func NewTexEventsService() *TexEventsService {
	return &TexEventsService{arena: storage.New()}
}

// ParseToEvents parses markup to completion and returns every event
// produced, in order.
func (s *TexEventsService) ParseToEvents(markup string) ([]event.Event, error) {
	p := texparse.New(markup, s.arena)
	var events []event.Event
	for {
		ev, ok, err := p.Next()
		if err != nil {
			pos, hasPos := p.BytePos()
			if hasPos {
				return nil, fmt.Errorf("parsing error at byte %d: %w", pos, err)
			}
			return nil, fmt.Errorf("parsing error: %w", err)
		}
		if !ok {
			return events, nil
		}
		events = append(events, ev)
	}
}
