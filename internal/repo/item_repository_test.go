package repo

import (
	"context"
	"testing"

	"HeritagePartage/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const testPhoto = "data:image/jpeg;base64,dGVzdA=="

// mkItems creates n items in order and returns them.
func mkItems(t *testing.T, r ItemRepository, n int, createdBy int64) []*model.Item {
	t.Helper()
	ctx := context.Background()
	items := make([]*model.Item, 0, n)
	for i := 0; i < n; i++ {
		it := &model.Item{CreatedBy: createdBy}
		assert.NoError(t, r.CreateWithPhoto(ctx, it, testPhoto))
		items = append(items, it)
	}
	return items
}

func TestItemRepository_CreateWithPhoto_NumbersAndInitialPhoto(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)

	items := mkItems(t, r, 3, 1)
	for i, it := range items {
		assert.Equal(t, i+1, it.Number)
		assert.Len(t, it.Photos, 1)
		assert.Equal(t, 0, it.Photos[0].Position)
	}
}

func TestItemRepository_NumberNeverReusedAfterSoftDelete(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	items := mkItems(t, r, 2, 1)
	// soft-delete the highest-numbered item, then create another
	assert.NoError(t, r.SoftDelete(ctx, items[1].ID, 1))

	next := &model.Item{CreatedBy: 1}
	assert.NoError(t, r.CreateWithPhoto(ctx, next, testPhoto))
	assert.Equal(t, 3, next.Number)

	// restore and create again, still monotonic
	assert.NoError(t, r.Restore(ctx, items[1].ID))
	last := &model.Item{CreatedBy: 1}
	assert.NoError(t, r.CreateWithPhoto(ctx, last, testPhoto))
	assert.Equal(t, 4, last.Number)
}

func TestItemRepository_List_OrderAndShowDeleted(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	items := mkItems(t, r, 3, 1)
	// delete item number 1: it must sink below the living ones
	assert.NoError(t, r.SoftDelete(ctx, items[0].ID, 1))

	all, err := r.List(ctx, true)
	assert.NoError(t, err)
	numbers := make([]int, 0, len(all))
	for _, it := range all {
		numbers = append(numbers, it.Number)
	}
	assert.Equal(t, []int{2, 3, 1}, numbers)
	assert.NotNil(t, all[2].DeletedAt)

	living, err := r.List(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, living, 2)
	for _, it := range living {
		assert.Nil(t, it.DeletedAt)
	}

	deleted, err := r.ListDeleted(ctx)
	assert.NoError(t, err)
	assert.Len(t, deleted, 1)
	assert.Equal(t, 1, deleted[0].Number)
}

func TestItemRepository_SoftDeleteAndRestore(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	it := mkItems(t, r, 1, 7)[0]

	assert.NoError(t, r.SoftDelete(ctx, it.ID, 7))
	got, err := r.GetByID(ctx, it.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got.DeletedAt)
	assert.Equal(t, int64(7), *got.DeletedBy)

	assert.NoError(t, r.Restore(ctx, it.ID))
	got, err = r.GetByID(ctx, it.ID)
	assert.NoError(t, err)
	assert.Nil(t, got.DeletedAt)
	assert.Nil(t, got.DeletedBy)

	// unknown item
	assert.Equal(t, gorm.ErrRecordNotFound, r.SoftDelete(ctx, 999, 7))
}

func TestItemRepository_Update_PartialAndNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	it := mkItems(t, r, 1, 1)[0]

	title := "Commode Louis XV"
	assert.NoError(t, r.Update(ctx, it.ID, map[string]any{"title": &title}))
	got, err := r.GetByID(ctx, it.ID)
	assert.NoError(t, err)
	assert.Equal(t, title, *got.Title)
	assert.Nil(t, got.Description)

	assert.Equal(t, gorm.ErrRecordNotFound, r.Update(ctx, 999, map[string]any{"title": nil}))
}

func TestItemRepository_ListWithoutPreference(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	prefs := NewPreferenceRepository(db)
	ctx := context.Background()

	items := mkItems(t, r, 3, 1)
	assert.NoError(t, prefs.Upsert(ctx, &model.Preference{ItemID: items[1].ID, UserID: 5, Level: model.LevelMaybe}))

	toReview, err := r.ListWithoutPreference(ctx, 5)
	assert.NoError(t, err)
	numbers := make([]int, 0, len(toReview))
	for _, it := range toReview {
		numbers = append(numbers, it.Number)
	}
	assert.Equal(t, []int{1, 3}, numbers)

	// another user still has everything to review
	toReview, err = r.ListWithoutPreference(ctx, 6)
	assert.NoError(t, err)
	assert.Len(t, toReview, 3)
}
