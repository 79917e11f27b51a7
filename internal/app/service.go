package app

import (
	"fmt"
	"log"

	"github.com/texstream/texevents/internal/domain/texparse"
	"github.com/texstream/texevents/internal/storage"
)

// ApplicationService orchestrates reading markup, running it through the
// parser engine, and streaming the resulting events to the output port.
type ApplicationService struct {
	inputProvider InputProvider // Input port
	eventWriter   EventWriter   // Output port
}

// NewApplicationService creates a new application service instance.
func NewApplicationService(provider InputProvider, writer EventWriter) *ApplicationService {
	return &ApplicationService{
		inputProvider: provider,
		eventWriter:   writer,
	}
}

// Run retrieves markup from the input port, parses it to completion,
// and streams every event to the output port in order.
func (s *ApplicationService) Run() error {
	markup, _, err := s.inputProvider.GetInput()
	if err != nil {
		return fmt.Errorf("failed to get input: %w", err)
	}

	arena := storage.New()
	p := texparse.New(markup, arena)

	defer func() {
		if cerr := s.eventWriter.Close(); cerr != nil {
			log.Printf("texevents: failed to close event writer: %v", cerr)
		}
	}()

	count := 0
	for {
		ev, ok, err := p.Next()
		if err != nil {
			pos, hasPos := p.BytePos()
			if hasPos {
				return fmt.Errorf("parse error at byte %d: %w", pos, err)
			}
			return fmt.Errorf("parse error: %w", err)
		}
		if !ok {
			break
		}
		if err := s.eventWriter.WriteEvent(ev); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
		count++
	}

	// Logged to stderr, not stdout, so it never interleaves with events
	// an adapter writes to stdout.
	log.Printf("texevents: streamed %d events", count)
	return nil
}
