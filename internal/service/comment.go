package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/savi-dev/savi/internal/service/utils"
	"github.com/savi-dev/savi/shared/domain"
	"github.com/savi-dev/savi/shared/errors"
	"github.com/savi-dev/savi/shared/logger"
)

type CommentService interface {
	Add(ctx context.Context, threadId domain.ThreadId, author *domain.User, content string, media *domain.Media) (domain.Comment, error)
	TechnicianReplies(threadId domain.ThreadId) ([]domain.Comment, error)
	Ordinary(threadId domain.ThreadId) ([]domain.Comment, error)
}

type CommentStorage interface {
	Thread(id domain.ThreadId) (domain.Thread, error)
	AddComment(c domain.Comment) error
	Comments(id domain.ThreadId) ([]domain.Comment, error)
}

// ReplyNotifier delivers the "your thread got a reply" notification to the
// thread author's inbox.
type ReplyNotifier interface {
	NotifyThreadReply(ctx context.Context, recipient domain.Email, replierName, threadTitle string) error
}

type Comment struct {
	storage  CommentStorage
	notifier ReplyNotifier
	policy   Policy
	now      func() time.Time
}

func NewComment(storage CommentStorage, notifier ReplyNotifier) *Comment {
	return &Comment{storage: storage, notifier: notifier, now: time.Now}
}

func (s *Comment) Add(ctx context.Context, threadId domain.ThreadId, author *domain.User, content string, media *domain.Media) (domain.Comment, error) {
	if err := s.policy.Check(author, ActionAddComment); err != nil {
		return domain.Comment{}, err
	}

	content = utils.SanitizeText(content)
	if content == "" {
		return domain.Comment{}, &errors.ValidationError{Message: "comment cannot be empty"}
	}

	thread, err := s.storage.Thread(threadId)
	if err != nil {
		return domain.Comment{}, err
	}

	now := s.now()
	comment := domain.Comment{
		Id:                uuid.NewString(),
		ThreadId:          threadId,
		Author:            author.AsAuthor(),
		Content:           content,
		CreatedAt:         now,
		CreatedDate:       now.Format(domain.DisplayDateLayout),
		CreatedTime:       now.Format(domain.DisplayTimeLayout),
		IsTechnicianReply: author.Role == domain.RoleTechnician,
		Media:             media,
	}

	if err := s.storage.AddComment(comment); err != nil {
		return domain.Comment{}, err
	}

	// Notify the thread author about the reply. Self-replies are skipped and a
	// delivery failure never fails the comment itself.
	if s.notifier != nil && thread.Author.Email != "" && thread.Author.Email != author.Email {
		if err := s.notifier.NotifyThreadReply(ctx, thread.Author.Email, author.Name, thread.Title); err != nil {
			logger.Log.Warn("failed to deliver reply notification", "thread", threadId, "error", err)
		}
	}

	return comment, nil
}

func (s *Comment) TechnicianReplies(threadId domain.ThreadId) ([]domain.Comment, error) {
	return s.partition(threadId, true)
}

func (s *Comment) Ordinary(threadId domain.ThreadId) ([]domain.Comment, error) {
	return s.partition(threadId, false)
}

func (s *Comment) partition(threadId domain.ThreadId, technician bool) ([]domain.Comment, error) {
	comments, err := s.storage.Comments(threadId)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Comment, 0, len(comments))
	for _, c := range comments {
		if c.IsTechnicianReply == technician {
			out = append(out, c)
		}
	}
	return out, nil
}

// PartitionComments splits an already-loaded comment list into technician
// replies and ordinary comments, both in insertion order.
func PartitionComments(comments []domain.Comment) (technician, ordinary []domain.Comment) {
	technician = make([]domain.Comment, 0, len(comments))
	ordinary = make([]domain.Comment, 0, len(comments))
	for _, c := range comments {
		if c.IsTechnicianReply {
			technician = append(technician, c)
		} else {
			ordinary = append(ordinary, c)
		}
	}
	return technician, ordinary
}
