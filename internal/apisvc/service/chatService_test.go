package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatStore struct {
	inserted  []*models.ChatMessage
	lastLimit int64
}

func (f *fakeChatStore) Insert(ctx context.Context, msg *models.ChatMessage) error {
	f.inserted = append(f.inserted, msg)
	return nil
}

func (f *fakeChatStore) ListByRoom(ctx context.Context, room string, limit int64) ([]*models.ChatMessage, error) {
	f.lastLimit = limit
	return nil, nil
}

func TestChatListLimitClamping(t *testing.T) {
	cases := []struct {
		name  string
		limit int64
		want  int64
	}{
		{"zero defaults", 0, 50},
		{"negative defaults", -3, 50},
		{"in range passes through", 120, 120},
		{"over max clamps", 5000, 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := &fakeChatStore{}
			svc := NewChatService(fs)

			_, err := svc.ListMessages(context.Background(), "umum", tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, fs.lastLimit)
		})
	}
}

func TestChatSendMessage(t *testing.T) {
	fs := &fakeChatStore{}
	svc := NewChatService(fs)

	msg, err := svc.SendMessage(context.Background(), "umum", 7, "Budi", "  halo semua  ")
	require.NoError(t, err)

	assert.Equal(t, "halo semua", msg.Text)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, int64(7), msg.SenderID)
	require.Len(t, fs.inserted, 1)

	// every message gets its own id
	other, err := svc.SendMessage(context.Background(), "umum", 7, "Budi", "halo lagi")
	require.NoError(t, err)
	assert.NotEqual(t, msg.ID, other.ID)
}

func TestChatSendValidation(t *testing.T) {
	fs := &fakeChatStore{}
	svc := NewChatService(fs)

	_, err := svc.SendMessage(context.Background(), "", 7, "Budi", "halo")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	_, err = svc.SendMessage(context.Background(), "umum", 7, "Budi", "   ")
	require.True(t, errors.As(err, &verr))

	assert.Empty(t, fs.inserted)
}
