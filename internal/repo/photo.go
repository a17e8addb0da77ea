package repo

import (
	"context"

	"HeritagePartage/internal/model"

	"gorm.io/gorm"
)

// PhotoRepository is the data-access contract for item photos.
type PhotoRepository interface {
	// Add appends a photo at position = max+1 (0 when the item has none),
	// in one transaction.
	Add(ctx context.Context, itemID int64, data string) (*model.Photo, error)

	// GetByID returns the photo or gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Photo, error)

	// ListByItem returns the item's photos ordered by position.
	ListByItem(ctx context.Context, itemID int64) ([]model.Photo, error)

	// CountByItem returns how many photos the item has.
	CountByItem(ctx context.Context, itemID int64) (int64, error)

	// Delete removes the photo. Remaining photos keep their positions.
	Delete(ctx context.Context, itemID, photoID int64) error

	// Reorder rewrites positions 0..n-1 following the given id order,
	// in one transaction.
	Reorder(ctx context.Context, itemID int64, photoIDs []int64) error
}

type photoRepo struct {
	db *gorm.DB
}

// NewPhotoRepository creates the gorm-backed photo repository.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepo{db: db}
}

func (r *photoRepo) Add(ctx context.Context, itemID int64, data string) (*model.Photo, error) {
	var photo model.Photo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos *int
		if err := tx.Model(&model.Photo{}).
			Select("MAX(position)").
			Where("item_id = ?", itemID).
			Scan(&maxPos).Error; err != nil {
			return err
		}
		pos := 0
		if maxPos != nil {
			pos = *maxPos + 1
		}
		photo = model.Photo{ItemID: itemID, Data: data, Position: pos}
		return tx.Create(&photo).Error
	})
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepo) GetByID(ctx context.Context, id int64) (*model.Photo, error) {
	var p model.Photo
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *photoRepo) ListByItem(ctx context.Context, itemID int64) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("position ASC, id ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepo) CountByItem(ctx context.Context, itemID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Photo{}).
		Where("item_id = ?", itemID).
		Count(&n).Error
	return n, err
}

func (r *photoRepo) Delete(ctx context.Context, itemID, photoID int64) error {
	tx := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Delete(&model.Photo{}, photoID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *photoRepo) Reorder(ctx context.Context, itemID int64, photoIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range photoIDs {
			res := tx.Model(&model.Photo{}).
				Where("id = ? AND item_id = ?", id, itemID).
				Update("position", i)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
