// Package storage provides the arena-like collaborator the parser
// borrows from when it needs to synthesize content with a lifetime
// longer than a single Next() call — chiefly, macro-expansion buffers,
// which (unlike ordinary group/argument content) are not slices of the
// caller's original input and would otherwise have nowhere to live once
// the lexeme scanner that produced them returns.
//
// Go has no direct equivalent of a bump allocator handing out borrowed
// slices of a fixed-lifetime arena; retaining owned strings for the
// Storage's own lifetime is the idiomatic substitute; the underlying
// bytes are never mutated after Intern returns, so sharing them is
// safe.
package storage

import "sync"

// Storage owns buffers synthesized during parsing. The zero value via
// New is ready to use; a Storage is safe for concurrent use, though in
// practice a Parser and its Storage are owned by a single goroutine.
type Storage struct {
	mu    sync.Mutex
	owned []string
}

// New returns an empty Storage.
func New() *Storage {
	return &Storage{}
}

// Intern copies s into a buffer owned by the Storage and returns it.
// The returned string remains valid for the lifetime of the Storage,
// independent of whatever produced s.
func (s *Storage) Intern(str string) string {
	buf := make([]byte, len(str))
	copy(buf, str)
	owned := string(buf)

	s.mu.Lock()
	s.owned = append(s.owned, owned)
	s.mu.Unlock()

	return owned
}

// Len reports how many strings have been interned, mostly useful for
// tests asserting that macro expansion did or did not allocate.
func (s *Storage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.owned)
}
