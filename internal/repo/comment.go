package repo

import (
	"context"

	"HeritagePartage/internal/model"

	"gorm.io/gorm"
)

// CommentRepository is the data-access contract for item comments.
type CommentRepository interface {
	// Create inserts a comment and returns it with its author preloaded.
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)

	// GetByID returns the comment or gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Comment, error)

	// ListByItem returns the item's comments in chronological order,
	// each with its author preloaded.
	ListByItem(ctx context.Context, itemID int64) ([]model.Comment, error)

	// Delete removes the comment for good.
	Delete(ctx context.Context, id int64) error
}

type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepository creates the gorm-backed comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	var out model.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&out, comment.ID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepo) ListByItem(ctx context.Context, itemID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("item_id = ?", itemID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Comment{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
