package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"HeritagePartage/internal/model"
	"HeritagePartage/internal/repo"

	"github.com/stretchr/testify/assert"
)

const testPhoto = "data:image/jpeg;base64,dGVzdA=="
const testPhotoMaxBytes = 10 * 1024 * 1024

// testEnv wires the real services over an in-memory SQLite database.
type testEnv struct {
	users    *UserService
	items    *ItemService
	comments *CommentService
	prefs    *PreferenceService

	commentRepo repo.CommentRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	userRepo := repo.NewUserRepository(db)
	itemRepo := repo.NewItemRepository(db)
	photoRepo := repo.NewPhotoRepository(db)
	commentRepo := repo.NewCommentRepository(db)
	prefRepo := repo.NewPreferenceRepository(db)
	return &testEnv{
		users:       NewUserService(userRepo),
		items:       NewItemService(itemRepo, photoRepo, prefRepo, userRepo, testPhotoMaxBytes),
		comments:    NewCommentService(commentRepo, itemRepo, userRepo),
		prefs:       NewPreferenceService(prefRepo, itemRepo, userRepo, commentRepo),
		commentRepo: commentRepo,
	}
}

// mkUser registers a member through the service.
func (e *testEnv) mkUser(t *testing.T, name, role string) *model.User {
	t.Helper()
	u, err := e.users.Create(context.Background(), name, role)
	assert.NoError(t, err)
	return u
}

// mkItem creates a fiche with its initial photo.
func (e *testEnv) mkItem(t *testing.T, callerID int64) *model.Item {
	t.Helper()
	it, err := e.items.Create(context.Background(), callerID, testPhoto, ItemUpdate{})
	assert.NoError(t, err)
	return it
}
