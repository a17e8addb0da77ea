package handlers

import (
	"net/http"
	"testing"

	"HeritagePartage/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCommentsAPI_CreateListDelete(t *testing.T) {
	api := newTestAPI(t)
	sophie := api.seedUser(t, "Sophie", model.RoleEnfant)
	jean := api.seedUser(t, "Jean", model.RoleParent)
	api.seedItem(t, sophie.ID, nil)

	var c CommentDTO
	api.doInto(t, http.MethodPost, "/api/items/1/comments", sophie.ID,
		map[string]string{"text": "  Elle était dans le salon  "}, http.StatusCreated, &c)
	assert.Equal(t, "Elle était dans le salon", c.Text)
	assert.Equal(t, "Sophie", c.User.Name)

	resp := api.do(t, http.MethodPost, "/api/items/1/comments", sophie.ID, map[string]string{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/items/1/comments", 0, map[string]string{"text": "anonyme"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/items/999/comments", sophie.ID, map[string]string{"text": "perdu"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// only the author may delete
	resp = api.do(t, http.MethodDelete, "/api/items/1/comments/1", jean.ID, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errMessage(t, resp)

	resp = api.do(t, http.MethodDelete, "/api/items/1/comments/1", sophie.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var comments []CommentDTO
	api.doInto(t, http.MethodGet, "/api/items/1/comments", 0, nil, http.StatusOK, &comments)
	assert.Empty(t, comments)
}
