package service

import (
	"context"
	"fmt"

	"github.com/savi-dev/savi/shared/domain"
	"github.com/savi-dev/savi/shared/errors"
)

type VoteService interface {
	// Vote applies the viewer's vote and returns the updated thread counters.
	Vote(ctx context.Context, threadId domain.ThreadId, viewerId string, direction domain.VoteDirection) (domain.Thread, error)
	// Viewer returns the viewer's recorded direction for a thread.
	Viewer(ctx context.Context, threadId domain.ThreadId, viewerId string) (domain.VoteDirection, error)
	// Ledger returns all of the viewer's recorded directions, for the listing
	// surface to attach vote state per thread card.
	Ledger(ctx context.Context, viewerId string) (map[domain.ThreadId]domain.VoteDirection, error)
}

type VoteCounterStorage interface {
	AdjustVotes(id domain.ThreadId, dUp, dDown int) (domain.Thread, error)
}

type VoteLedgerStorage interface {
	Load(ctx context.Context, viewerId string) (map[domain.ThreadId]domain.VoteDirection, error)
	Save(ctx context.Context, viewerId string, ledger map[domain.ThreadId]domain.VoteDirection) error
}

// Vote enforces single-direction-per-viewer voting: repeating the same vote is
// a no-op, switching direction moves the point from one counter to the other.
// The original thread-card UI incremented without decrementing on a switch;
// the thread-detail rule (always decrement the previous direction) is the one
// implemented everywhere here.
type Vote struct {
	counters VoteCounterStorage
	ledger   VoteLedgerStorage
}

func NewVote(counters VoteCounterStorage, ledger VoteLedgerStorage) *Vote {
	return &Vote{counters: counters, ledger: ledger}
}

func (s *Vote) Vote(ctx context.Context, threadId domain.ThreadId, viewerId string, direction domain.VoteDirection) (domain.Thread, error) {
	if direction != domain.VoteUp && direction != domain.VoteDown {
		return domain.Thread{}, &errors.ValidationError{Message: "vote direction must be up or down"}
	}

	ledger, err := s.ledger.Load(ctx, viewerId)
	if err != nil {
		return domain.Thread{}, err
	}

	previous := ledger[threadId]
	if previous == direction {
		// Re-clicking the same button never double-counts.
		return s.counters.AdjustVotes(threadId, 0, 0)
	}

	dUp, dDown := 0, 0
	switch previous {
	case domain.VoteUp:
		dUp--
	case domain.VoteDown:
		dDown--
	}
	if direction == domain.VoteUp {
		dUp++
	} else {
		dDown++
	}

	thread, err := s.counters.AdjustVotes(threadId, dUp, dDown)
	if err != nil {
		return domain.Thread{}, err
	}

	ledger[threadId] = direction
	if err := s.ledger.Save(ctx, viewerId, ledger); err != nil {
		return domain.Thread{}, err
	}
	return thread, nil
}

func (s *Vote) Viewer(ctx context.Context, threadId domain.ThreadId, viewerId string) (domain.VoteDirection, error) {
	ledger, err := s.ledger.Load(ctx, viewerId)
	if err != nil {
		return domain.VoteNone, err
	}
	return ledger[threadId], nil
}

func (s *Vote) Ledger(ctx context.Context, viewerId string) (map[domain.ThreadId]domain.VoteDirection, error) {
	return s.ledger.Load(ctx, viewerId)
}

// FormatScore renders upvotes-downvotes for display: plain digits below a
// thousand, one decimal and a "K" suffix from a thousand up (1500 -> "1.5K").
func FormatScore(score int) string {
	abs := score
	sign := ""
	if abs < 0 {
		abs = -abs
		sign = "-"
	}
	if abs >= 1000 {
		return fmt.Sprintf("%s%.1fK", sign, float64(abs)/1000)
	}
	return fmt.Sprintf("%d", score)
}
