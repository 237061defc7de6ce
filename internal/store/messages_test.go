package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"telemedicine-platform-server/internal/models"
)

func seedMessage(t *testing.T, s *Store, senderID, receiverID, content string, sentAt time.Time) *models.Message {
	t.Helper()

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		SentAt:     sentAt,
	}
	if err := s.CreateMessage(msg); err != nil {
		t.Fatalf("creating message: %v", err)
	}
	return msg
}

func TestConversationIsSymmetricAndOrdered(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, models.RolePatient, "alice@example.com")
	bob := seedUser(t, s, models.RoleDoctor, "bob@example.com")
	carol := seedUser(t, s, models.RolePatient, "carol@example.com")

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	first := seedMessage(t, s, alice.ID, bob.ID, "hello", base)
	second := seedMessage(t, s, bob.ID, alice.ID, "hi there", base.Add(time.Minute))
	third := seedMessage(t, s, alice.ID, bob.ID, "question about my results", base.Add(2*time.Minute))
	seedMessage(t, s, alice.ID, carol.ID, "unrelated", base.Add(time.Second))

	fromAlice, err := s.Conversation(alice.ID, bob.ID)
	assert.NoError(t, err)
	if assert.Len(t, fromAlice, 3) {
		assert.Equal(t, first.ID, fromAlice[0].ID)
		assert.Equal(t, second.ID, fromAlice[1].ID)
		assert.Equal(t, third.ID, fromAlice[2].ID)
	}

	fromBob, err := s.Conversation(bob.ID, alice.ID)
	assert.NoError(t, err)
	if assert.Len(t, fromBob, 3) {
		for i := range fromAlice {
			assert.Equal(t, fromAlice[i].ID, fromBob[i].ID)
		}
	}
}

func TestMessagesByUserCoversBothDirections(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, models.RolePatient, "alice@example.com")
	bob := seedUser(t, s, models.RoleDoctor, "bob@example.com")
	carol := seedUser(t, s, models.RolePatient, "carol@example.com")

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	seedMessage(t, s, alice.ID, bob.ID, "sent", base)
	seedMessage(t, s, bob.ID, alice.ID, "received", base.Add(time.Minute))
	seedMessage(t, s, bob.ID, carol.ID, "not alice's", base.Add(2*time.Minute))

	msgs, err := s.MessagesByUser(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestCreateMessageStampsSentAt(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, models.RolePatient, "alice@example.com")
	bob := seedUser(t, s, models.RoleDoctor, "bob@example.com")

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })

	msg := &models.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "hi"}
	assert.NoError(t, s.CreateMessage(msg))
	assert.WithinDuration(t, now, msg.SentAt, time.Second)
}

func TestMarkMessageRead(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, models.RolePatient, "alice@example.com")
	bob := seedUser(t, s, models.RoleDoctor, "bob@example.com")

	msg := seedMessage(t, s, alice.ID, bob.ID, "hello", time.Now())
	assert.False(t, msg.Read)

	assert.NoError(t, s.MarkMessageRead(msg.ID))

	reloaded, err := s.GetMessage(msg.ID)
	assert.NoError(t, err)
	assert.True(t, reloaded.Read)
}
