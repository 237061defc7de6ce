package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"

	"telemedicine-platform-server/internal/config"
	"telemedicine-platform-server/internal/models"
	"telemedicine-platform-server/internal/routes"
	"telemedicine-platform-server/internal/store"
	"telemedicine-platform-server/internal/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testServer wires the full router against an in-memory database so
// handler tests go through the real middleware chain.
type testServer struct {
	router *gin.Engine
	store  *store.Store
	cfg    *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := models.InitDB(sqlite.Open(":memory:"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	cfg := &config.Config{
		Environment:               "development",
		JWTSecret:                 "test-access-secret",
		JWTRefreshSecret:          "test-refresh-secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 24,
		UploadDir:                 t.TempDir(),
		MaxUploadBytes:            1024,
	}

	s := store.New(db)
	router := gin.New()
	routes.SetupRoutes(router, s, cfg)

	return &testServer{router: router, store: s, cfg: cfg}
}

func (ts *testServer) seedUser(t *testing.T, role models.Role, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:     email,
		FirstName: "Alex",
		LastName:  "Reed",
		Role:      role,
	}
	if err := user.SetPassword("password123"); err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	if err := ts.store.CreateUser(user); err != nil {
		t.Fatalf("creating user: %v", err)
	}
	return user
}

// token issues an access token for the user, bypassing the login
// endpoint. Login itself is covered in the auth tests.
func (ts *testServer) token(t *testing.T, user *models.User) string {
	t.Helper()

	accessToken, _, err := utils.GenerateTokens(user, ts.cfg)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return accessToken
}

func (ts *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// upload performs a multipart POST to the file upload endpoint.
func (ts *testServer) upload(t *testing.T, token, filename string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("writing form field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/files/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.ResponseData {
	t.Helper()

	var resp utils.ResponseData
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v (body: %s)", err, w.Body.String())
	}
	return resp
}

// dataInto re-decodes the data portion of a response envelope into a
// typed target.
func dataInto(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()

	resp := decodeResponse(t, w)
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("re-marshaling response data: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decoding response data: %v", err)
	}
}
