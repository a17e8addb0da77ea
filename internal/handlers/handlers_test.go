package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"HeritagePartage/internal/config"
	"HeritagePartage/internal/repo"
	"HeritagePartage/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPhoto = "data:image/jpeg;base64,dGVzdA=="

// testAPI runs the whole router over an in-memory database.
type testAPI struct {
	srv *httptest.Server
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB(fmt.Sprintf("file:api_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	userRepo := repo.NewUserRepository(db)
	itemRepo := repo.NewItemRepository(db)
	photoRepo := repo.NewPhotoRepository(db)
	commentRepo := repo.NewCommentRepository(db)
	prefRepo := repo.NewPreferenceRepository(db)

	cfg := &config.Config{PhotoMaxSizeMB: 10}
	logger := zap.NewNop().Sugar()

	h := NewHandler(
		service.NewUserService(userRepo),
		service.NewItemService(itemRepo, photoRepo, prefRepo, userRepo, cfg.PhotoMaxSizeMB*1024*1024),
		service.NewCommentService(commentRepo, itemRepo, userRepo),
		service.NewPreferenceService(prefRepo, itemRepo, userRepo, commentRepo),
		logger,
		cfg,
	)

	srv := httptest.NewServer(h.Router)
	t.Cleanup(srv.Close)
	return &testAPI{srv: srv}
}

// do sends a JSON request, impersonating userID when positive.
func (a *testAPI) do(t *testing.T, method, path string, userID int64, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.srv.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID > 0 {
		req.Header.Set("X-User-Id", fmt.Sprintf("%d", userID))
	}
	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// doInto performs the request, asserts the status and decodes the body.
func (a *testAPI) doInto(t *testing.T, method, path string, userID int64, body any, wantStatus int, out any) {
	t.Helper()
	resp := a.do(t, method, path, userID, body)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "body: %s", raw)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out))
	}
}

// seedUser registers a member and returns its DTO.
func (a *testAPI) seedUser(t *testing.T, name, role string) UserDTO {
	t.Helper()
	var u UserDTO
	a.doInto(t, http.MethodPost, "/api/users", 0, map[string]string{"name": name, "role": role}, http.StatusCreated, &u)
	return u
}

// seedItem creates a fiche on behalf of userID.
func (a *testAPI) seedItem(t *testing.T, userID int64, body map[string]any) ItemDTO {
	t.Helper()
	if body == nil {
		body = map[string]any{}
	}
	if _, ok := body["photo"]; !ok {
		body["photo"] = testPhoto
	}
	var it ItemDTO
	a.doInto(t, http.MethodPost, "/api/items", userID, body, http.StatusCreated, &it)
	return it
}

func errMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Message)
	return body.Message
}
