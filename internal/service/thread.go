package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/savi-dev/savi/internal/service/utils"
	"github.com/savi-dev/savi/shared/domain"
	"github.com/savi-dev/savi/shared/errors"
	"github.com/savi-dev/savi/shared/logger"
)

// SortMode selects the thread listing order.
type SortMode string

const (
	SortNewest     SortMode = "newest"
	SortOldest     SortMode = "oldest"
	SortMostActive SortMode = "mostActive"
	SortHasMedia   SortMode = "hasMedia"
)

type ThreadService interface {
	Create(author *domain.User, title, content string, media *domain.Media) (domain.Thread, error)
	// List filters by query first, then sorts. Empty query matches everything.
	List(query string, mode SortMode) []domain.Thread
	// Get returns the thread with its comments, bumping the view counter.
	Get(id domain.ThreadId) (domain.Thread, []domain.Comment, error)
	// Report flags a thread for admin review. Reports are logged, not stored.
	Report(reporter *domain.User, id domain.ThreadId, reason, details string) error
}

type ThreadStorage interface {
	CreateThread(t domain.Thread) error
	Threads() []domain.Thread
	Thread(id domain.ThreadId) (domain.Thread, error)
	BumpViews(id domain.ThreadId) (domain.Thread, error)
	Comments(id domain.ThreadId) ([]domain.Comment, error)
}

type Thread struct {
	storage ThreadStorage
	policy  Policy
	now     func() time.Time
}

func NewThread(storage ThreadStorage) *Thread {
	return &Thread{storage: storage, now: time.Now}
}

// newThreadId derives a creation-time id. The uuid tail keeps ids unique when
// two threads land on the same millisecond.
func (s *Thread) newThreadId() domain.ThreadId {
	return fmt.Sprintf("%d-%s", s.now().UnixMilli(), uuid.NewString()[:8])
}

func (s *Thread) Create(author *domain.User, title, content string, media *domain.Media) (domain.Thread, error) {
	if err := s.policy.Check(author, ActionCreateThread); err != nil {
		return domain.Thread{}, err
	}

	title = utils.SanitizeText(title)
	content = utils.SanitizeText(content)
	if title == "" {
		return domain.Thread{}, &errors.ValidationError{Message: "title cannot be empty"}
	}
	if content == "" {
		return domain.Thread{}, &errors.ValidationError{Message: "content cannot be empty"}
	}

	now := s.now()
	thread := domain.Thread{
		Id:          s.newThreadId(),
		Author:      author.AsAuthor(),
		Title:       strings.ToUpper(title),
		Content:     content,
		CreatedAt:   now,
		CreatedDate: now.Format(domain.DisplayDateLayout),
		CreatedTime: now.Format(domain.DisplayTimeLayout),
		Media:       media,
	}

	if err := s.storage.CreateThread(thread); err != nil {
		return domain.Thread{}, err
	}
	return thread, nil
}

func (s *Thread) List(query string, mode SortMode) []domain.Thread {
	threads := filterThreads(s.storage.Threads(), query)
	sortThreads(threads, mode)
	return threads
}

func (s *Thread) Get(id domain.ThreadId) (domain.Thread, []domain.Comment, error) {
	thread, err := s.storage.BumpViews(id)
	if err != nil {
		return domain.Thread{}, nil, err
	}
	comments, err := s.storage.Comments(id)
	if err != nil {
		return domain.Thread{}, nil, err
	}
	return thread, comments, nil
}

func (s *Thread) Report(reporter *domain.User, id domain.ThreadId, reason, details string) error {
	thread, err := s.storage.Thread(id)
	if err != nil {
		return err
	}

	reportedBy := "anonymous"
	if reporter != nil {
		reportedBy = reporter.Email
	}
	logger.Log.Info("content reported",
		"threadId", thread.Id,
		"reason", reason,
		"details", utils.SanitizeText(details),
		"reportedBy", reportedBy,
	)
	return nil
}

// filterThreads keeps threads whose title or author name contains the query,
// case-insensitively.
func filterThreads(threads []domain.Thread, query string) []domain.Thread {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return threads
	}

	out := threads[:0]
	for _, t := range threads {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Author.Name), query) {
			out = append(out, t)
		}
	}
	return out
}

// sortThreads orders in place. All modes are stable so the incoming
// newest-first order is kept among ties.
func sortThreads(threads []domain.Thread, mode SortMode) {
	switch mode {
	case SortOldest:
		// Ascending by date component only: two threads on the same day keep
		// their relative order no matter the time of day.
		sort.SliceStable(threads, func(i, j int) bool {
			return threads[i].CreatedDay().Before(threads[j].CreatedDay())
		})
	case SortMostActive:
		sort.SliceStable(threads, func(i, j int) bool {
			return threads[i].Score() > threads[j].Score()
		})
	case SortHasMedia:
		sort.SliceStable(threads, func(i, j int) bool {
			return threads[i].Media != nil && threads[j].Media == nil
		})
	case SortNewest:
		fallthrough
	default:
		sort.SliceStable(threads, func(i, j int) bool {
			return threads[i].CreatedAt.After(threads[j].CreatedAt)
		})
	}
}
