package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"fitbuddy/internal/config"
	"fitbuddy/internal/database"
	"fitbuddy/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

type testEnv struct {
	app *fiber.App
	srv *Server
	db  *gorm.DB
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	mediaDir := t.TempDir()
	blobs, err := storage.NewDiskStore(mediaDir, "/media")
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:        "test-secret-not-for-production",
		JWTLifetimeHours: 1,
		Env:              "test",
		MediaDir:         mediaDir,
	}

	srv, err := NewServerWithDeps(cfg, db, nil, blobs)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)

	return &testEnv{app: app, srv: srv, db: db}
}

// doJSON performs a JSON request against the test app and decodes the body.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}
	return resp.StatusCode, result
}

// registerUser creates an account through the API and returns its token and ID.
func (e *testEnv) registerUser(t *testing.T, username string) (string, uint) {
	t.Helper()

	status, body := e.doJSON(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": username,
		"email":    fmt.Sprintf("%s@example.com", username),
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, status, "register %s: %v", username, body)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user, _ := body["user"].(map[string]interface{})
	require.NotNil(t, user)
	id, _ := user["id"].(float64)
	require.NotZero(t, id)
	return token, uint(id)
}

// createPost creates a post through the API and returns its ID.
func (e *testEnv) createPost(t *testing.T, token, text string) uint {
	t.Helper()

	status, body := e.doJSON(t, http.MethodPost, "/api/v1/posts", token, map[string]string{
		"text": text,
	})
	require.Equal(t, http.StatusCreated, status, "create post: %v", body)
	post, _ := body["post"].(map[string]interface{})
	require.NotNil(t, post)
	id, _ := post["id"].(float64)
	require.NotZero(t, id)
	return uint(id)
}
