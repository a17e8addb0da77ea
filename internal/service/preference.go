package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"HeritagePartage/internal/model"
	"HeritagePartage/internal/repo"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RepartitionStat is one member's aggregated claim: counts and decimal
// value totals at love level, and separately at maybe level. Items without
// an estimate count toward ItemCount but not ItemsWithValue.
type RepartitionStat struct {
	UserID   int64
	UserName string
	UserRole string

	ItemCount      int
	ItemsWithValue int
	TotalValue     decimal.Decimal

	MaybeCount     int
	MaybeWithValue int
	MaybeValue     decimal.Decimal
}

// PreferenceService owns the upsert-with-announcement rule and the
// repartition aggregation.
type PreferenceService struct {
	prefs    repo.PreferenceRepository
	items    repo.ItemRepository
	users    repo.UserRepository
	comments repo.CommentRepository
}

func NewPreferenceService(
	prefs repo.PreferenceRepository,
	items repo.ItemRepository,
	users repo.UserRepository,
	comments repo.CommentRepository,
) *PreferenceService {
	return &PreferenceService{prefs: prefs, items: items, users: users, comments: comments}
}

// announcement is the system comment narrating a preference change.
func announcement(name, level string) string {
	switch level {
	case model.LevelLove:
		return fmt.Sprintf("%s a un coup de cœur !", name)
	case model.LevelMaybe:
		return fmt.Sprintf("%s est peut-être intéressé(e)", name)
	default:
		return fmt.Sprintf("%s n'est pas intéressé(e)", name)
	}
}

// Set upserts the caller's preference on the item. When the level actually
// changes (first-time set included) a system comment announcing the change
// is appended on the caller's behalf; re-posting the same level is a no-op.
func (s *PreferenceService) Set(ctx context.Context, callerID, itemID int64, level string) (*model.Preference, error) {
	caller, err := requireUser(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}
	if !model.ValidLevel(level) {
		return nil, Validationf("niveau invalide: %q", level)
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing, err := s.prefs.GetByItemAndUser(ctx, itemID, callerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.Level == level {
		return existing, nil
	}

	pref := &model.Preference{ItemID: itemID, UserID: callerID, Level: level}
	if err := s.prefs.Upsert(ctx, pref); err != nil {
		return nil, err
	}
	_, err = s.comments.Create(ctx, &model.Comment{
		ItemID: itemID,
		UserID: callerID,
		Text:   announcement(caller.Name, level),
	})
	if err != nil {
		return nil, err
	}
	return s.prefs.GetByItemAndUser(ctx, itemID, callerID)
}

// GetMine returns the caller's preference on the item, or nil when none is
// recorded, which is not an error.
func (s *PreferenceService) GetMine(ctx context.Context, callerID, itemID int64) (*model.Preference, error) {
	if _, err := requireUser(ctx, s.users, callerID); err != nil {
		return nil, err
	}
	p, err := s.prefs.GetByItemAndUser(ctx, itemID, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// ListForItem returns every member's preference on the item, with identity.
func (s *PreferenceService) ListForItem(ctx context.Context, itemID int64) ([]model.Preference, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.prefs.ListByItem(ctx, itemID)
}

// Repartition folds the love/maybe rows into per-member stats, ordered by
// love total value descending then name. Members with no love/maybe
// preference do not appear.
func (s *PreferenceService) Repartition(ctx context.Context) ([]RepartitionStat, error) {
	rows, err := s.prefs.RepartitionRows(ctx)
	if err != nil {
		return nil, err
	}
	byUser := make(map[int64]*RepartitionStat)
	order := make([]int64, 0)
	for _, row := range rows {
		st, ok := byUser[row.UserID]
		if !ok {
			st = &RepartitionStat{UserID: row.UserID, UserName: row.UserName, UserRole: row.UserRole}
			byUser[row.UserID] = st
			order = append(order, row.UserID)
		}
		switch row.Level {
		case model.LevelLove:
			st.ItemCount++
			if row.Value != nil {
				st.ItemsWithValue++
				st.TotalValue = st.TotalValue.Add(*row.Value)
			}
		case model.LevelMaybe:
			st.MaybeCount++
			if row.Value != nil {
				st.MaybeWithValue++
				st.MaybeValue = st.MaybeValue.Add(*row.Value)
			}
		}
	}
	stats := make([]RepartitionStat, 0, len(byUser))
	for _, id := range order {
		stats = append(stats, *byUser[id])
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if c := stats[i].TotalValue.Cmp(stats[j].TotalValue); c != 0 {
			return c > 0
		}
		return strings.ToLower(stats[i].UserName) < strings.ToLower(stats[j].UserName)
	})
	return stats, nil
}
