package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"paper-backend/application/services"
	"paper-backend/domain/core/entities"
	"paper-backend/infrastructure/config"
	"paper-backend/infrastructure/persistence/memory"
	"paper-backend/pkg/auth"
	"paper-backend/pkg/utils"
)

const testSecret = "test-secret"

type folderBody struct {
	ID          string              `json:"id"`
	ParentID    *string             `json:"parentId"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Type        entities.FolderType `json:"type"`
}

type testServer struct {
	handler   http.Handler
	generator *auth.JWTGenerator
	service   *services.FolderService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Environment:   "development",
		JWTSecret:     testSecret,
		JWTIssuer:     "paper-backend",
		CORSOrigins:   []string{"*"},
		IPRateLimit:   1000,
		UserRateLimit: 1000,
	}

	logger := zap.NewNop()
	repo := memory.NewFolderRepository()
	service := services.NewFolderService(repo, logger)

	validator, err := auth.NewJWTValidator(auth.JWTConfig{
		SigningMethod: "HS256",
		SecretKey:     testSecret,
		Issuer:        "paper-backend",
	})
	require.NoError(t, err)

	generator, err := auth.NewJWTGenerator(auth.JWTGeneratorConfig{
		SigningMethod: "HS256",
		SecretKey:     testSecret,
		Issuer:        "paper-backend",
		ExpiryTime:    time.Hour,
	})
	require.NoError(t, err)

	return &testServer{
		handler:   NewRouter(cfg, service, validator, logger).Setup(),
		generator: generator,
		service:   service,
	}
}

func (s *testServer) tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := s.generator.GenerateToken(userID, userID+"@example.com", nil)
	require.NoError(t, err)
	return token
}

func (s *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeFolder(t *testing.T, rec *httptest.ResponseRecorder) folderBody {
	t.Helper()
	var body folderBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestFoldersRequireAuthentication(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodGet, "/api/v1/folders", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFoldersRejectExpiredToken(t *testing.T) {
	srv := newTestServer(t)

	generator, err := auth.NewJWTGenerator(auth.JWTGeneratorConfig{
		SigningMethod: "HS256",
		SecretKey:     testSecret,
		Issuer:        "paper-backend",
		ExpiryTime:    -time.Hour,
	})
	require.NoError(t, err)
	expired, err := generator.GenerateToken("user1", "user1@example.com", nil)
	require.NoError(t, err)

	rec := srv.request(t, http.MethodGet, "/api/v1/folders", expired, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFoldersRejectForgedToken(t *testing.T) {
	srv := newTestServer(t)

	forger, err := auth.NewJWTGenerator(auth.JWTGeneratorConfig{
		SigningMethod: "HS256",
		SecretKey:     "some-other-secret",
		Issuer:        "paper-backend",
		ExpiryTime:    time.Hour,
	})
	require.NoError(t, err)
	forged, err := forger.GenerateToken("user1", "user1@example.com", nil)
	require.NoError(t, err)

	rec := srv.request(t, http.MethodGet, "/api/v1/folders", forged, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateFolder(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	rec := srv.request(t, http.MethodPost, "/api/v1/folders", token, map[string]interface{}{
		"name":        "Notes",
		"description": "daily notes",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeFolder(t, rec)
	assert.Equal(t, "Notes", body.Name)
	require.NotNil(t, body.Description)
	assert.Equal(t, "daily notes", *body.Description)
	assert.Nil(t, body.ParentID)
	assert.Equal(t, entities.FolderTypeUser, body.Type)
	_, err := uuid.Parse(body.ID)
	assert.NoError(t, err)

	created, err := utils.ParseRFC3339(body.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), created, time.Minute)
	updated, err := utils.ParseRFC3339(body.UpdatedAt)
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestCreateFolder_MissingName(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	rec := srv.request(t, http.MethodPost, "/api/v1/folders", token, map[string]interface{}{
		"description": "no name",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateFolder_MalformedParentID(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	rec := srv.request(t, http.MethodPost, "/api/v1/folders", token, map[string]interface{}{
		"name":     "Notes",
		"parentId": "not-a-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFolder(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	created := decodeFolder(t, srv.request(t, http.MethodPost, "/api/v1/folders", token, map[string]interface{}{
		"name": "Notes",
	}))

	rec := srv.request(t, http.MethodGet, "/api/v1/folders/"+created.ID, token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeFolder(t, rec))
}

func TestGetFolder_Absent(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	rec := srv.request(t, http.MethodGet, "/api/v1/folders/"+uuid.New().String(), token, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFolder_MalformedID(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	rec := srv.request(t, http.MethodGet, "/api/v1/folders/not-a-uuid", token, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFolder_ForeignOwnerLooksAbsent(t *testing.T) {
	srv := newTestServer(t)
	owner := srv.tokenFor(t, "user1")
	intruder := srv.tokenFor(t, "user2")

	created := decodeFolder(t, srv.request(t, http.MethodPost, "/api/v1/folders", owner, map[string]interface{}{
		"name": "Private",
	}))

	rec := srv.request(t, http.MethodGet, "/api/v1/folders/"+created.ID, intruder, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFolders(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")
	other := srv.tokenFor(t, "user2")

	srv.request(t, http.MethodPost, "/api/v1/folders", token, map[string]interface{}{"name": "Books"})
	srv.request(t, http.MethodPost, "/api/v1/folders", token, map[string]interface{}{"name": "Music"})
	srv.request(t, http.MethodPost, "/api/v1/folders", other, map[string]interface{}{"name": "Theirs"})

	rec := srv.request(t, http.MethodGet, "/api/v1/folders", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var folders []folderBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &folders))
	require.Len(t, folders, 2)
	names := []string{folders[0].Name, folders[1].Name}
	assert.ElementsMatch(t, []string{"Books", "Music"}, names)
}

func TestListFolders_EmptyIsArray(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	rec := srv.request(t, http.MethodGet, "/api/v1/folders", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdateFolder_PartialBody(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	created := decodeFolder(t, srv.request(t, http.MethodPost, "/api/v1/folders", token, map[string]interface{}{
		"name":        "Notes",
		"description": "keep me",
	}))

	rec := srv.request(t, http.MethodPut, "/api/v1/folders/"+created.ID, token, map[string]interface{}{
		"name": "Journal",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeFolder(t, rec)
	assert.Equal(t, "Journal", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "keep me", *updated.Description)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	_, err := utils.ParseRFC3339(updated.UpdatedAt)
	assert.NoError(t, err)
}

func TestUpdateFolder_Reparent(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	parent := decodeFolder(t, srv.request(t, http.MethodPost, "/api/v1/folders", token, map[string]interface{}{
		"name": "Parent",
	}))
	child := decodeFolder(t, srv.request(t, http.MethodPost, "/api/v1/folders", token, map[string]interface{}{
		"name": "Child",
	}))

	rec := srv.request(t, http.MethodPut, "/api/v1/folders/"+child.ID, token, map[string]interface{}{
		"parentId": parent.ID,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeFolder(t, rec)
	require.NotNil(t, updated.ParentID)
	assert.Equal(t, parent.ID, *updated.ParentID)
	assert.Equal(t, "Child", updated.Name)
}

func TestUpdateFolder_Absent(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	rec := srv.request(t, http.MethodPut, "/api/v1/folders/"+uuid.New().String(), token, map[string]interface{}{
		"name": "Renamed",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteFolder(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	created := decodeFolder(t, srv.request(t, http.MethodPost, "/api/v1/folders", token, map[string]interface{}{
		"name": "Temporary",
	}))

	rec := srv.request(t, http.MethodDelete, "/api/v1/folders/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.request(t, http.MethodGet, "/api/v1/folders/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteFolder_AbsentSucceeds(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "user1")

	rec := srv.request(t, http.MethodDelete, "/api/v1/folders/"+uuid.New().String(), token, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteFolder_ForeignOwnerLooksAbsent(t *testing.T) {
	srv := newTestServer(t)
	owner := srv.tokenFor(t, "user1")
	intruder := srv.tokenFor(t, "user2")

	created := decodeFolder(t, srv.request(t, http.MethodPost, "/api/v1/folders", owner, map[string]interface{}{
		"name": "Private",
	}))

	rec := srv.request(t, http.MethodDelete, "/api/v1/folders/"+created.ID, intruder, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.request(t, http.MethodGet, "/api/v1/folders/"+created.ID, owner, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
