package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/savi-dev/savi/shared/domain"
	internal_errors "github.com/savi-dev/savi/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockCommentStorage struct {
	threadFunc   func(id domain.ThreadId) (domain.Thread, error)
	commentsFunc func(id domain.ThreadId) ([]domain.Comment, error)

	added []domain.Comment
}

func (m *MockCommentStorage) Thread(id domain.ThreadId) (domain.Thread, error) {
	if m.threadFunc != nil {
		return m.threadFunc(id)
	}
	return domain.Thread{Id: id, Title: "SOME THREAD"}, nil
}

func (m *MockCommentStorage) AddComment(c domain.Comment) error {
	m.added = append(m.added, c)
	return nil
}

func (m *MockCommentStorage) Comments(id domain.ThreadId) ([]domain.Comment, error) {
	if m.commentsFunc != nil {
		return m.commentsFunc(id)
	}
	return nil, nil
}

type MockReplyNotifier struct {
	notifyFunc func(ctx context.Context, recipient domain.Email, replierName, threadTitle string) error

	recipients []domain.Email
}

func (m *MockReplyNotifier) NotifyThreadReply(ctx context.Context, recipient domain.Email, replierName, threadTitle string) error {
	m.recipients = append(m.recipients, recipient)
	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, recipient, replierName, threadTitle)
	}
	return nil
}

// --- Add ---

func TestCommentAdd_Success(t *testing.T) {
	storage := &MockCommentStorage{}
	svc := NewComment(storage, &MockReplyNotifier{})
	fixed := time.Date(2025, 11, 20, 9, 15, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	comment, err := svc.Add(context.Background(), "t1", customer(), "Check the axle first.", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, comment.Id)
	assert.Equal(t, domain.ThreadId("t1"), comment.ThreadId)
	assert.Equal(t, "Check the axle first.", comment.Content)
	assert.Equal(t, "20 Nov 2025", comment.CreatedDate)
	assert.Equal(t, "09:15", comment.CreatedTime)
	assert.False(t, comment.IsTechnicianReply)

	require.Len(t, storage.added, 1)
}

func TestCommentAdd_TechnicianFlag(t *testing.T) {
	storage := &MockCommentStorage{}
	svc := NewComment(storage, &MockReplyNotifier{})

	technician := &domain.User{Name: "Sarah", Email: "sarah@example.com", Role: domain.RoleTechnician}
	comment, err := svc.Add(context.Background(), "t1", technician, "Replace the bearing.", nil)
	require.NoError(t, err)
	assert.True(t, comment.IsTechnicianReply)
}

func TestCommentAdd_AnonymousDenied(t *testing.T) {
	storage := &MockCommentStorage{}
	svc := NewComment(storage, &MockReplyNotifier{})

	_, err := svc.Add(context.Background(), "t1", nil, "hi", nil)
	var denied *internal_errors.AuthorizationDenied
	require.ErrorAs(t, err, &denied)
	assert.True(t, denied.RedirectToLogin)
	assert.Empty(t, storage.added)
}

func TestCommentAdd_EmptyContent(t *testing.T) {
	svc := NewComment(&MockCommentStorage{}, &MockReplyNotifier{})

	_, err := svc.Add(context.Background(), "t1", customer(), "   ", nil)
	assert.True(t, internal_errors.Is[*internal_errors.ValidationError](err))
}

func TestCommentAdd_ThreadMissing(t *testing.T) {
	storage := &MockCommentStorage{
		threadFunc: func(id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{}, internal_errors.NotFound
		},
	}
	svc := NewComment(storage, &MockReplyNotifier{})

	_, err := svc.Add(context.Background(), "missing", customer(), "hi", nil)
	assert.True(t, internal_errors.IsNotFound(err))
	assert.Empty(t, storage.added)
}

func TestCommentAdd_NotifiesThreadAuthor(t *testing.T) {
	storage := &MockCommentStorage{
		threadFunc: func(id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{Id: id, Title: "HOW TO FIX THE ROBOT WHEEL", Author: domain.Author{Name: "Owner", Email: "owner@example.com"}}, nil
		},
	}
	notifier := &MockReplyNotifier{}
	svc := NewComment(storage, notifier)

	_, err := svc.Add(context.Background(), "t1", customer(), "Try WD-40.", nil)
	require.NoError(t, err)
	require.Len(t, notifier.recipients, 1)
	assert.Equal(t, "owner@example.com", notifier.recipients[0])
}

func TestCommentAdd_SelfReplyNotNotified(t *testing.T) {
	author := customer()
	storage := &MockCommentStorage{
		threadFunc: func(id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{Id: id, Title: "T", Author: domain.Author{Name: author.Name, Email: author.Email}}, nil
		},
	}
	notifier := &MockReplyNotifier{}
	svc := NewComment(storage, notifier)

	_, err := svc.Add(context.Background(), "t1", author, "bump", nil)
	require.NoError(t, err)
	assert.Empty(t, notifier.recipients)
}

func TestCommentAdd_NotifierFailureDoesNotFailComment(t *testing.T) {
	storage := &MockCommentStorage{
		threadFunc: func(id domain.ThreadId) (domain.Thread, error) {
			return domain.Thread{Id: id, Title: "T", Author: domain.Author{Email: "owner@example.com"}}, nil
		},
	}
	notifier := &MockReplyNotifier{
		notifyFunc: func(ctx context.Context, recipient domain.Email, replierName, threadTitle string) error {
			return errors.New("inbox unavailable")
		},
	}
	svc := NewComment(storage, notifier)

	_, err := svc.Add(context.Background(), "t1", customer(), "still lands", nil)
	assert.NoError(t, err)
	assert.Len(t, storage.added, 1)
}

// --- Partition ---

func TestPartitionComments(t *testing.T) {
	comments := []domain.Comment{
		{Id: "c1", IsTechnicianReply: true},
		{Id: "c2"},
		{Id: "c3", IsTechnicianReply: true},
		{Id: "c4"},
	}

	technician, ordinary := PartitionComments(comments)
	require.Len(t, technician, 2)
	require.Len(t, ordinary, 2)
	assert.Equal(t, "c1", technician[0].Id)
	assert.Equal(t, "c3", technician[1].Id)
	assert.Equal(t, "c2", ordinary[0].Id)
	assert.Equal(t, "c4", ordinary[1].Id)
}

func TestCommentPartitionAccessors(t *testing.T) {
	storage := &MockCommentStorage{
		commentsFunc: func(id domain.ThreadId) ([]domain.Comment, error) {
			return []domain.Comment{
				{Id: "c1", IsTechnicianReply: true},
				{Id: "c2"},
			}, nil
		},
	}
	svc := NewComment(storage, &MockReplyNotifier{})

	technician, err := svc.TechnicianReplies("t1")
	require.NoError(t, err)
	require.Len(t, technician, 1)
	assert.Equal(t, "c1", technician[0].Id)

	ordinary, err := svc.Ordinary("t1")
	require.NoError(t, err)
	require.Len(t, ordinary, 1)
	assert.Equal(t, "c2", ordinary[0].Id)
}
