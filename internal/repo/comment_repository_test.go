package repo

import (
	"context"
	"testing"

	"HeritagePartage/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCommentRepository_CreateListDelete(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	items := NewItemRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	u, err := users.CreateUser(ctx, &model.User{Name: "Sophie", Role: model.RoleEnfant})
	assert.NoError(t, err)
	it := mkItems(t, items, 1, u.ID)[0]

	c1, err := comments.Create(ctx, &model.Comment{ItemID: it.ID, UserID: u.ID, Text: "premier"})
	assert.NoError(t, err)
	assert.NotNil(t, c1.User)
	assert.Equal(t, "Sophie", c1.User.Name)

	_, err = comments.Create(ctx, &model.Comment{ItemID: it.ID, UserID: u.ID, Text: "second"})
	assert.NoError(t, err)

	list, err := comments.ListByItem(ctx, it.ID)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	// chronological ascending
	assert.Equal(t, "premier", list[0].Text)
	assert.Equal(t, "second", list[1].Text)

	assert.NoError(t, comments.Delete(ctx, c1.ID))
	list, err = comments.ListByItem(ctx, it.ID)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	assert.Equal(t, gorm.ErrRecordNotFound, comments.Delete(ctx, c1.ID))
	_, err = comments.GetByID(ctx, c1.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
