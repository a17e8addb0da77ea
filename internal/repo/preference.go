package repo

import (
	"context"
	"time"

	"HeritagePartage/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RepartitionRow is one (user, level, item value) tuple feeding the
// repartition aggregation. Value is nil for items without an estimate.
type RepartitionRow struct {
	UserID   int64
	UserName string
	UserRole string
	Level    string
	Value    *decimal.Decimal
}

// PreferenceRepository is the data-access contract for preferences,
// including the joined rows the derived views are built from.
type PreferenceRepository interface {
	// Upsert inserts the preference or overwrites the level in place,
	// keyed by the (item_id, user_id) unique index.
	Upsert(ctx context.Context, pref *model.Preference) error

	// GetByItemAndUser returns the row or gorm.ErrRecordNotFound.
	GetByItemAndUser(ctx context.Context, itemID, userID int64) (*model.Preference, error)

	// ListByItem returns the item's preferences with users preloaded.
	ListByItem(ctx context.Context, itemID int64) ([]model.Preference, error)

	// ListItemIDsByUserAndLevel returns ids of non-deleted items where the
	// user's preference equals level, by ascending item number.
	ListItemIDsByUserAndLevel(ctx context.Context, userID int64, level string) ([]int64, error)

	// ListByUser returns all of the user's preferences on non-deleted items.
	ListByUser(ctx context.Context, userID int64) ([]model.Preference, error)

	// ListByLevelWithUsers returns all preferences at the level on
	// non-deleted items, with users preloaded. Feeds the conflicts view.
	ListByLevelWithUsers(ctx context.Context, level string) ([]model.Preference, error)

	// RepartitionRows returns the love/maybe tuples over non-deleted items.
	RepartitionRows(ctx context.Context) ([]RepartitionRow, error)
}

type preferenceRepo struct {
	db *gorm.DB
}

// NewPreferenceRepository creates the gorm-backed preference repository.
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) Upsert(ctx context.Context, pref *model.Preference) error {
	pref.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"level", "updated_at"}),
	}).Create(pref).Error
}

func (r *preferenceRepo) GetByItemAndUser(ctx context.Context, itemID, userID int64) (*model.Preference, error) {
	var p model.Preference
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND user_id = ?", itemID, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *preferenceRepo) ListByItem(ctx context.Context, itemID int64) ([]model.Preference, error) {
	var prefs []model.Preference
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("item_id = ?", itemID).
		Order("updated_at ASC, id ASC").
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func (r *preferenceRepo) ListItemIDsByUserAndLevel(ctx context.Context, userID int64, level string) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.Preference{}).
		Select("preferences.item_id").
		Joins("JOIN items ON items.id = preferences.item_id").
		Where("preferences.user_id = ? AND preferences.level = ? AND items.deleted_at IS NULL", userID, level).
		Order("items.number ASC").
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *preferenceRepo) ListByUser(ctx context.Context, userID int64) ([]model.Preference, error) {
	var prefs []model.Preference
	err := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = preferences.item_id").
		Where("preferences.user_id = ? AND items.deleted_at IS NULL", userID).
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func (r *preferenceRepo) ListByLevelWithUsers(ctx context.Context, level string) ([]model.Preference, error) {
	var prefs []model.Preference
	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN items ON items.id = preferences.item_id").
		Where("preferences.level = ? AND items.deleted_at IS NULL", level).
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func (r *preferenceRepo) RepartitionRows(ctx context.Context) ([]RepartitionRow, error) {
	var rows []RepartitionRow
	err := r.db.WithContext(ctx).
		Table("preferences").
		Select("users.id AS user_id, users.name AS user_name, users.role AS user_role, preferences.level AS level, items.value AS value").
		Joins("JOIN users ON users.id = preferences.user_id").
		Joins("JOIN items ON items.id = preferences.item_id").
		Where("items.deleted_at IS NULL AND preferences.level IN ?", []string{model.LevelLove, model.LevelMaybe}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
