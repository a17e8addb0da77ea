package repo

import (
	"context"
	"testing"

	"HeritagePartage/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPreferenceRepository_UpsertOverwritesInPlace(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	prefs := NewPreferenceRepository(db)
	ctx := context.Background()

	it := mkItems(t, items, 1, 1)[0]

	assert.NoError(t, prefs.Upsert(ctx, &model.Preference{ItemID: it.ID, UserID: 3, Level: model.LevelMaybe}))
	assert.NoError(t, prefs.Upsert(ctx, &model.Preference{ItemID: it.ID, UserID: 3, Level: model.LevelLove}))

	// exactly one row, carrying the latest level
	var count int64
	assert.NoError(t, db.Model(&model.Preference{}).Where("item_id = ? AND user_id = ?", it.ID, 3).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := prefs.GetByItemAndUser(ctx, it.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, model.LevelLove, got.Level)

	_, err = prefs.GetByItemAndUser(ctx, it.ID, 99)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestPreferenceRepository_LevelQueriesSkipDeletedItems(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	items := NewItemRepository(db)
	prefs := NewPreferenceRepository(db)
	ctx := context.Background()

	u, _ := users.CreateUser(ctx, &model.User{Name: "Jean", Role: model.RoleParent})
	kept := mkItems(t, items, 1, u.ID)[0]
	gone := mkItems(t, items, 1, u.ID)[0]

	assert.NoError(t, prefs.Upsert(ctx, &model.Preference{ItemID: kept.ID, UserID: u.ID, Level: model.LevelLove}))
	assert.NoError(t, prefs.Upsert(ctx, &model.Preference{ItemID: gone.ID, UserID: u.ID, Level: model.LevelLove}))
	assert.NoError(t, items.SoftDelete(ctx, gone.ID, u.ID))

	ids, err := prefs.ListItemIDsByUserAndLevel(ctx, u.ID, model.LevelLove)
	assert.NoError(t, err)
	assert.Equal(t, []int64{kept.ID}, ids)

	byUser, err := prefs.ListByUser(ctx, u.ID)
	assert.NoError(t, err)
	assert.Len(t, byUser, 1)
	assert.Equal(t, kept.ID, byUser[0].ItemID)

	withUsers, err := prefs.ListByLevelWithUsers(ctx, model.LevelLove)
	assert.NoError(t, err)
	assert.Len(t, withUsers, 1)
	assert.NotNil(t, withUsers[0].User)
	assert.Equal(t, "Jean", withUsers[0].User.Name)
}

func TestPreferenceRepository_RepartitionRows(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	items := NewItemRepository(db)
	prefs := NewPreferenceRepository(db)
	ctx := context.Background()

	marie, _ := users.CreateUser(ctx, &model.User{Name: "Marie", Role: model.RoleParent})
	valued := mkItems(t, items, 1, marie.ID)[0]
	v := decimal.NewFromInt(150)
	assert.NoError(t, items.Update(ctx, valued.ID, map[string]any{"value": v}))
	bare := mkItems(t, items, 1, marie.ID)[0]

	assert.NoError(t, prefs.Upsert(ctx, &model.Preference{ItemID: valued.ID, UserID: marie.ID, Level: model.LevelLove}))
	assert.NoError(t, prefs.Upsert(ctx, &model.Preference{ItemID: bare.ID, UserID: marie.ID, Level: model.LevelMaybe}))
	// "no" never reaches the repartition view
	assert.NoError(t, prefs.Upsert(ctx, &model.Preference{ItemID: bare.ID, UserID: 999, Level: model.LevelNo}))

	rows, err := prefs.RepartitionRows(ctx)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "Marie", row.UserName)
		assert.Equal(t, model.RoleParent, row.UserRole)
		switch row.Level {
		case model.LevelLove:
			assert.NotNil(t, row.Value)
			assert.True(t, row.Value.Equal(v))
		case model.LevelMaybe:
			assert.Nil(t, row.Value)
		default:
			t.Fatalf("unexpected level %q", row.Level)
		}
	}
}
