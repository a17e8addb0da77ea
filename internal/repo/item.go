package repo

import (
	"context"
	"time"

	"HeritagePartage/internal/model"

	"gorm.io/gorm"
)

// ItemRepository is the data-access contract for fiches.
type ItemRepository interface {
	// CreateWithPhoto inserts the item with number = max+1 and its initial
	// photo at position 0, in one transaction. The read-max-then-insert is
	// not protected against concurrent creations; at family scale two racing
	// creates are accepted as a known gap.
	CreateWithPhoto(ctx context.Context, item *model.Item, photoData string) error

	// GetByID returns the item with its photos ordered by position,
	// or gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// List returns all items, non-deleted first, each group by ascending
	// number. With showDeleted=false the deleted rows are dropped entirely.
	List(ctx context.Context, showDeleted bool) ([]model.Item, error)

	// ListDeleted returns only soft-deleted items, by ascending number.
	ListDeleted(ctx context.Context) ([]model.Item, error)

	// ListByIDs returns non-deleted items from the id set, by ascending number.
	ListByIDs(ctx context.Context, ids []int64) ([]model.Item, error)

	// ListWithoutPreference returns non-deleted items the user has recorded
	// no preference for, by ascending number.
	ListWithoutPreference(ctx context.Context, userID int64) ([]model.Item, error)

	// Update applies a partial column update.
	Update(ctx context.Context, id int64, updates map[string]any) error

	// SoftDelete marks the item deleted; gorm.ErrRecordNotFound when absent.
	SoftDelete(ctx context.Context, id int64, byUserID int64) error

	// Restore clears the deletion mark.
	Restore(ctx context.Context, id int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository creates the gorm-backed item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

// orderedPhotos preloads photos sorted by stored position.
func orderedPhotos(db *gorm.DB) *gorm.DB {
	return db.Preload("Photos", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC, id ASC")
	})
}

func (r *itemRepo) CreateWithPhoto(ctx context.Context, item *model.Item, photoData string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxNumber int
		if err := tx.Model(&model.Item{}).
			Select("COALESCE(MAX(number), 0)").
			Scan(&maxNumber).Error; err != nil {
			return err
		}
		item.Number = maxNumber + 1

		if err := tx.Create(item).Error; err != nil {
			return err
		}
		photo := model.Photo{ItemID: item.ID, Data: photoData, Position: 0}
		if err := tx.Create(&photo).Error; err != nil {
			return err
		}
		item.Photos = []model.Photo{photo}
		return nil
	})
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := orderedPhotos(r.db.WithContext(ctx)).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) List(ctx context.Context, showDeleted bool) ([]model.Item, error) {
	q := orderedPhotos(r.db.WithContext(ctx)).
		Order("CASE WHEN deleted_at IS NULL THEN 0 ELSE 1 END, number ASC")
	if !showDeleted {
		q = q.Where("deleted_at IS NULL")
	}
	var items []model.Item
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) ListDeleted(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := orderedPhotos(r.db.WithContext(ctx)).
		Where("deleted_at IS NOT NULL").
		Order("number ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) ListByIDs(ctx context.Context, ids []int64) ([]model.Item, error) {
	if len(ids) == 0 {
		return []model.Item{}, nil
	}
	var items []model.Item
	err := orderedPhotos(r.db.WithContext(ctx)).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Order("number ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) ListWithoutPreference(ctx context.Context, userID int64) ([]model.Item, error) {
	var items []model.Item
	err := orderedPhotos(r.db.WithContext(ctx)).
		Where("deleted_at IS NULL").
		Where("id NOT IN (?)", r.db.Model(&model.Preference{}).
			Select("item_id").
			Where("user_id = ?", userID)).
		Order("number ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepo) SoftDelete(ctx context.Context, id int64, byUserID int64) error {
	now := time.Now().UTC()
	return r.Update(ctx, id, map[string]any{
		"deleted_at": &now,
		"deleted_by": byUserID,
	})
}

func (r *itemRepo) Restore(ctx context.Context, id int64) error {
	return r.Update(ctx, id, map[string]any{
		"deleted_at": nil,
		"deleted_by": nil,
	})
}
