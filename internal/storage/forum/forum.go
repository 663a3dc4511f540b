// Package forum is the in-memory thread and comment store. Threads are held
// newest-first; comments are append-only per thread. There is no delete path.
package forum

import (
	"sync"

	"github.com/savi-dev/savi/shared/domain"
	"github.com/savi-dev/savi/shared/errors"
)

type Storage struct {
	mu       sync.RWMutex
	threads  []*domain.Thread
	comments map[domain.ThreadId][]domain.Comment
}

func New() *Storage {
	return &Storage{comments: make(map[domain.ThreadId][]domain.Comment)}
}

// CreateThread prepends the thread so listings default to most-recent-first.
func (s *Storage) CreateThread(t domain.Thread) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := t
	s.threads = append([]*domain.Thread{&cp}, s.threads...)
	return nil
}

// Threads returns a snapshot of all threads in insertion (newest-first) order.
func (s *Storage) Threads() []domain.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Thread, len(s.threads))
	for i, t := range s.threads {
		out[i] = *t
	}
	return out
}

func (s *Storage) locked(id domain.ThreadId) *domain.Thread {
	for _, t := range s.threads {
		if t.Id == id {
			return t
		}
	}
	return nil
}

func (s *Storage) Thread(id domain.ThreadId) (domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.locked(id)
	if t == nil {
		return domain.Thread{}, errors.NotFound
	}
	return *t, nil
}

// BumpViews increments the view counter and returns the updated thread.
func (s *Storage) BumpViews(id domain.ThreadId) (domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.locked(id)
	if t == nil {
		return domain.Thread{}, errors.NotFound
	}
	t.ViewCount++
	return *t, nil
}

// AdjustVotes applies counter deltas. Counters never go below zero.
func (s *Storage) AdjustVotes(id domain.ThreadId, dUp, dDown int) (domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.locked(id)
	if t == nil {
		return domain.Thread{}, errors.NotFound
	}
	t.Upvotes += dUp
	if t.Upvotes < 0 {
		t.Upvotes = 0
	}
	t.Downvotes += dDown
	if t.Downvotes < 0 {
		t.Downvotes = 0
	}
	return *t, nil
}

// AddComment appends the comment to its thread, bumps the comment counter and
// flips hasTechnicianReply when a technician replies.
func (s *Storage) AddComment(c domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.locked(c.ThreadId)
	if t == nil {
		return errors.NotFound
	}

	s.comments[c.ThreadId] = append(s.comments[c.ThreadId], c)
	t.CommentCount++
	if c.IsTechnicianReply {
		t.HasTechnicianReply = true
	}
	return nil
}

// Comments returns the thread's comments in insertion order.
func (s *Storage) Comments(id domain.ThreadId) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.locked(id) == nil {
		return nil, errors.NotFound
	}
	out := make([]domain.Comment, len(s.comments[id]))
	copy(out, s.comments[id])
	return out, nil
}
