package view

import (
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
)

// Source is a gesture source fed by the host, one per item
type Source struct {
	nextID      int
	subscribers map[int]func(domain.PanSample)
}

// Verify interface compliance at compile time
var _ ports.GestureSource = (*Source)(nil)

// NewSource creates a Source without subscribers
func NewSource() *Source {
	return &Source{subscribers: make(map[int]func(domain.PanSample))}
}

// Subscribe implements ports.GestureSource
func (s *Source) Subscribe(fn func(domain.PanSample)) func() {
	s.nextID++
	id := s.nextID
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

// Emit delivers sample to the subscribers in subscription order
func (s *Source) Emit(sample domain.PanSample) {
	for id := 1; id <= s.nextID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			fn(sample)
		}
	}
}

// Subscribers returns the number of active subscribers
func (s *Source) Subscribers() int {
	return len(s.subscribers)
}
