package notify

import (
	"context"
	"testing"

	"github.com/savi-dev/savi/internal/storage/kv"
	"github.com/savi-dev/savi/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AbsentList(t *testing.T) {
	s := New(kv.NewMemory())

	list, ok, err := s.Load(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, list)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(kv.NewMemory())
	ctx := context.Background()

	in := []domain.Notification{
		{
			Id:         "1",
			Type:       domain.NotificationRegistration,
			Title:      "Technician registration request",
			Message:    "Ahmad Hidayat applied to register as a technician",
			Time:       "15 minutes ago",
			ActionType: domain.ActionApprove,
			ActionData: &domain.RegistrationData{UserId: "tech_001", UserName: "Ahmad Hidayat", UserEmail: "ahmad.hidayat@example.com"},
		},
		{Id: "2", Type: domain.NotificationSystem, Title: "System update", IsRead: true},
	}
	require.NoError(t, s.Save(ctx, "admin@example.com", in))

	got, ok, err := s.Load(ctx, "admin@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, got)
}

func TestSave_NilBecomesEmptyList(t *testing.T) {
	s := New(kv.NewMemory())
	ctx := context.Background()

	// An emptied inbox must stay distinguishable from a never-seeded one, or
	// the seed set would come back after a delete-all.
	require.NoError(t, s.Save(ctx, "budi@example.com", nil))

	got, ok, err := s.Load(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestLoad_MalformedBlobIsAbsent(t *testing.T) {
	store := kv.NewMemory()
	s := New(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "saviNotifications_budi@example.com", []byte("{not json")))

	list, ok, err := s.Load(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, list)
}

func TestListsAreKeyedPerUser(t *testing.T) {
	s := New(kv.NewMemory())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a@example.com", []domain.Notification{{Id: "1"}}))
	require.NoError(t, s.Save(ctx, "b@example.com", []domain.Notification{{Id: "2"}, {Id: "3"}}))

	listA, _, err := s.Load(ctx, "a@example.com")
	require.NoError(t, err)
	listB, _, err := s.Load(ctx, "b@example.com")
	require.NoError(t, err)
	assert.Len(t, listA, 1)
	assert.Len(t, listB, 2)
}
