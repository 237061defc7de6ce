package store

import (
	"telemedicine-platform-server/internal/models"
)

// CreateMessage inserts a new message, stamping SentAt if the caller
// left it zero.
func (s *Store) CreateMessage(msg *models.Message) error {
	if msg.SentAt.IsZero() {
		msg.SentAt = s.now()
	}
	return s.db.Create(msg).Error
}

// GetMessage fetches a message by id.
func (s *Store) GetMessage(id string) (*models.Message, error) {
	var msg models.Message
	if err := s.db.First(&msg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// MessagesByUser returns every message the user sent or received,
// ordered by sent_at ascending.
func (s *Store) MessagesByUser(userID string) ([]models.Message, error) {
	msgs := []models.Message{}
	err := s.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("sent_at asc").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// Conversation returns every message exchanged between the two users
// in either direction, ordered by sent_at ascending. Symmetric:
// Conversation(a, b) and Conversation(b, a) are the same set.
func (s *Store) Conversation(userID, otherUserID string) ([]models.Message, error) {
	msgs := []models.Message{}
	err := s.db.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, otherUserID, otherUserID, userID).
		Order("sent_at asc").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkMessageRead flips the read flag to true. The only mutation a
// message ever sees.
func (s *Store) MarkMessageRead(id string) error {
	return s.db.Model(&models.Message{}).Where("id = ?", id).Update("read", true).Error
}
