package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"telemedicine-platform-server/internal/models"
)

func TestSendMessageAndConversation(t *testing.T) {
	ts := newTestServer(t)
	patient := ts.seedUser(t, models.RolePatient, "pat@example.com")
	doctor := ts.seedUser(t, models.RoleDoctor, "doc@example.com")
	other := ts.seedUser(t, models.RolePatient, "other@example.com")
	patientToken := ts.token(t, patient)
	doctorToken := ts.token(t, doctor)

	w := ts.request(t, http.MethodPost, "/api/messages", patientToken, gin.H{
		"receiverId": doctor.ID,
		"content":    "I have a question about my dosage",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var sent models.Message
	dataInto(t, w, &sent)
	assert.Equal(t, patient.ID, sent.SenderID)
	assert.False(t, sent.Read)

	w = ts.request(t, http.MethodPost, "/api/messages", doctorToken, gin.H{
		"receiverId": patient.ID,
		"content":    "Take it with food",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Noise outside the conversation
	w = ts.request(t, http.MethodPost, "/api/messages", patientToken, gin.H{
		"receiverId": other.ID,
		"content":    "unrelated",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var conversation []models.Message
	w = ts.request(t, http.MethodGet, "/api/messages/conversation/"+doctor.ID, patientToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	dataInto(t, w, &conversation)
	assert.Len(t, conversation, 2)

	// Same exchange from the doctor's side
	w = ts.request(t, http.MethodGet, "/api/messages/conversation/"+patient.ID, doctorToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	dataInto(t, w, &conversation)
	assert.Len(t, conversation, 2)
}

func TestCannotMessageSelf(t *testing.T) {
	ts := newTestServer(t)
	patient := ts.seedUser(t, models.RolePatient, "pat@example.com")

	w := ts.request(t, http.MethodPost, "/api/messages", ts.token(t, patient), gin.H{
		"receiverId": patient.ID,
		"content":    "note to self",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	ts := newTestServer(t)
	patient := ts.seedUser(t, models.RolePatient, "pat@example.com")

	w := ts.request(t, http.MethodPost, "/api/messages", ts.token(t, patient), gin.H{
		"receiverId": uuid.New().String(),
		"content":    "hello?",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkMessageReadReceiverOnly(t *testing.T) {
	ts := newTestServer(t)
	patient := ts.seedUser(t, models.RolePatient, "pat@example.com")
	doctor := ts.seedUser(t, models.RoleDoctor, "doc@example.com")

	w := ts.request(t, http.MethodPost, "/api/messages", ts.token(t, patient), gin.H{
		"receiverId": doctor.ID,
		"content":    "please confirm",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var msg models.Message
	dataInto(t, w, &msg)

	// The sender cannot mark their own message as read
	w = ts.request(t, http.MethodPost, "/api/messages/"+msg.ID+"/read", ts.token(t, patient), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.request(t, http.MethodPost, "/api/messages/"+msg.ID+"/read", ts.token(t, doctor), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	reloaded, err := ts.store.GetMessage(msg.ID)
	assert.NoError(t, err)
	assert.True(t, reloaded.Read)
}
