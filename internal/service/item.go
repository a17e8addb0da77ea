package service

import (
	"context"
	"errors"
	"sort"

	"HeritagePartage/internal/model"
	"HeritagePartage/internal/repo"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item list filters.
const (
	FilterDeleted         = "deleted"
	FilterMyLove          = "my-love"
	FilterUserLove        = "user-love"
	FilterUserPreferences = "user-preferences"
	FilterConflicts       = "conflicts"
	FilterToReview        = "to-review"
)

// ItemView is the canonical item-with-photos value plus the optional,
// independently-named enrichments the filtered views add. A plain listing
// carries none of them.
type ItemView struct {
	model.Item

	DeletedByName  *string
	Lovers         []string
	LoveCount      int
	UserPreference *string
}

// ItemUpdate carries a partial update. Nil pointers leave the column
// untouched; provided strings are trimmed, whitespace-only becomes null;
// a zero value clears the estimate.
type ItemUpdate struct {
	Title       *string
	Description *string
	Value       *decimal.Decimal
}

// ItemService owns the catalog rules: monotonic numbers, the one-photo
// minimum, soft delete and restore, and the derived filter views.
type ItemService struct {
	items  repo.ItemRepository
	photos repo.PhotoRepository
	prefs  repo.PreferenceRepository
	users  repo.UserRepository

	photoMaxBytes int
}

func NewItemService(
	items repo.ItemRepository,
	photos repo.PhotoRepository,
	prefs repo.PreferenceRepository,
	users repo.UserRepository,
	photoMaxBytes int,
) *ItemService {
	return &ItemService{items: items, photos: photos, prefs: prefs, users: users, photoMaxBytes: photoMaxBytes}
}

// Create opens a new fiche with its initial photo at position 0.
func (s *ItemService) Create(ctx context.Context, callerID int64, photoData string, upd ItemUpdate) (*model.Item, error) {
	if _, err := requireUser(ctx, s.users, callerID); err != nil {
		return nil, err
	}
	if err := validatePhotoData(photoData, s.photoMaxBytes); err != nil {
		return nil, err
	}
	item := &model.Item{CreatedBy: callerID}
	if upd.Title != nil {
		item.Title = normalizeText(*upd.Title)
	}
	if upd.Description != nil {
		item.Description = normalizeText(*upd.Description)
	}
	if upd.Value != nil {
		if upd.Value.IsNegative() {
			return nil, Validationf("la valeur estimée ne peut pas être négative")
		}
		if !upd.Value.IsZero() {
			item.Value = upd.Value
		}
	}
	if err := s.items.CreateWithPhoto(ctx, item, photoData); err != nil {
		return nil, err
	}
	return item, nil
}

// Get returns one fiche with its photos or ErrNotFound.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

// Update applies a partial edit to title/description/value.
func (s *ItemService) Update(ctx context.Context, callerID, id int64, upd ItemUpdate) (*model.Item, error) {
	if _, err := requireUser(ctx, s.users, callerID); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if upd.Title != nil {
		updates["title"] = normalizeText(*upd.Title)
	}
	if upd.Description != nil {
		updates["description"] = normalizeText(*upd.Description)
	}
	if upd.Value != nil {
		if upd.Value.IsNegative() {
			return nil, Validationf("la valeur estimée ne peut pas être négative")
		}
		if upd.Value.IsZero() {
			updates["value"] = nil
		} else {
			updates["value"] = upd.Value
		}
	}
	if len(updates) > 0 {
		if err := s.items.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

// SoftDelete marks the fiche deleted on behalf of the caller.
func (s *ItemService) SoftDelete(ctx context.Context, callerID, id int64) error {
	if _, err := requireUser(ctx, s.users, callerID); err != nil {
		return err
	}
	if err := s.items.SoftDelete(ctx, id, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Restore clears the deletion mark and returns the fiche.
func (s *ItemService) Restore(ctx context.Context, callerID, id int64) (*model.Item, error) {
	if _, err := requireUser(ctx, s.users, callerID); err != nil {
		return nil, err
	}
	if err := s.items.Restore(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// AddPhoto appends a photo after the item's current last position.
func (s *ItemService) AddPhoto(ctx context.Context, callerID, itemID int64, data string) (*model.Photo, error) {
	if _, err := requireUser(ctx, s.users, callerID); err != nil {
		return nil, err
	}
	if err := validatePhotoData(data, s.photoMaxBytes); err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, itemID); err != nil {
		return nil, err
	}
	return s.photos.Add(ctx, itemID, data)
}

// DeletePhoto removes a photo; the item's last photo cannot be removed.
func (s *ItemService) DeletePhoto(ctx context.Context, callerID, itemID, photoID int64) error {
	if _, err := requireUser(ctx, s.users, callerID); err != nil {
		return err
	}
	if _, err := s.Get(ctx, itemID); err != nil {
		return err
	}
	n, err := s.photos.CountByItem(ctx, itemID)
	if err != nil {
		return err
	}
	if n <= 1 {
		return Validationf("impossible de supprimer la dernière photo de la fiche")
	}
	if err := s.photos.Delete(ctx, itemID, photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ReorderPhotos rewrites positions 0..n-1 following the given order. The id
// set must exactly match the item's photos.
func (s *ItemService) ReorderPhotos(ctx context.Context, callerID, itemID int64, photoIDs []int64) (*model.Item, error) {
	if _, err := requireUser(ctx, s.users, callerID); err != nil {
		return nil, err
	}
	existing, err := s.photos.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, ErrNotFound
	}
	if len(photoIDs) != len(existing) {
		return nil, Validationf("la liste doit contenir exactement les photos de la fiche")
	}
	want := make(map[int64]bool, len(existing))
	for _, p := range existing {
		want[p.ID] = true
	}
	seen := make(map[int64]bool, len(photoIDs))
	for _, id := range photoIDs {
		if !want[id] || seen[id] {
			return nil, Validationf("la liste doit contenir exactement les photos de la fiche")
		}
		seen[id] = true
	}
	if err := s.photos.Reorder(ctx, itemID, photoIDs); err != nil {
		return nil, err
	}
	return s.Get(ctx, itemID)
}

// List evaluates the requested view. callerID is required by the my-love
// and to-review filters; filterUserID by the user-love and user-preferences
// ones.
func (s *ItemService) List(ctx context.Context, callerID, filterUserID int64, filter string, showDeleted bool) ([]ItemView, error) {
	switch filter {
	case "":
		items, err := s.items.List(ctx, showDeleted)
		if err != nil {
			return nil, err
		}
		return s.withDeleteInfo(ctx, items)

	case FilterDeleted:
		items, err := s.items.ListDeleted(ctx)
		if err != nil {
			return nil, err
		}
		return s.withDeleteInfo(ctx, items)

	case FilterMyLove:
		if _, err := requireUser(ctx, s.users, callerID); err != nil {
			return nil, err
		}
		return s.lovedBy(ctx, callerID)

	case FilterUserLove:
		if filterUserID <= 0 {
			return nil, Validationf("paramètre userId requis pour ce filtre")
		}
		return s.lovedBy(ctx, filterUserID)

	case FilterUserPreferences:
		if filterUserID <= 0 {
			return nil, Validationf("paramètre userId requis pour ce filtre")
		}
		return s.preferencesOf(ctx, filterUserID)

	case FilterConflicts:
		return s.conflicts(ctx)

	case FilterToReview:
		if _, err := requireUser(ctx, s.users, callerID); err != nil {
			return nil, err
		}
		items, err := s.items.ListWithoutPreference(ctx, callerID)
		if err != nil {
			return nil, err
		}
		return plainViews(items), nil

	default:
		return nil, Validationf("filtre inconnu: %q", filter)
	}
}

func plainViews(items []model.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, ItemView{Item: it})
	}
	return views
}

// withDeleteInfo annotates deleted rows with the deleting member's name.
func (s *ItemService) withDeleteInfo(ctx context.Context, items []model.Item) ([]ItemView, error) {
	views := plainViews(items)
	var names map[int64]string
	for i := range views {
		if views[i].DeletedBy == nil {
			continue
		}
		if names == nil {
			users, err := s.users.List(ctx)
			if err != nil {
				return nil, err
			}
			names = make(map[int64]string, len(users))
			for _, u := range users {
				names[u.ID] = u.Name
			}
		}
		if name, ok := names[*views[i].DeletedBy]; ok {
			views[i].DeletedByName = &name
		}
	}
	return views, nil
}

func (s *ItemService) lovedBy(ctx context.Context, userID int64) ([]ItemView, error) {
	ids, err := s.prefs.ListItemIDsByUserAndLevel(ctx, userID, model.LevelLove)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return plainViews(items), nil
}

func (s *ItemService) preferencesOf(ctx context.Context, userID int64) ([]ItemView, error) {
	prefs, err := s.prefs.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	levels := make(map[int64]string, len(prefs))
	ids := make([]int64, 0, len(prefs))
	for _, p := range prefs {
		levels[p.ItemID] = p.Level
		ids = append(ids, p.ItemID)
	}
	items, err := s.items.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	views := plainViews(items)
	for i := range views {
		if level, ok := levels[views[i].ID]; ok {
			l := level
			views[i].UserPreference = &l
		}
	}
	return views, nil
}

// conflicts returns items loved by two or more members, annotated with the
// sorted lover names, ordered by love count descending then number.
func (s *ItemService) conflicts(ctx context.Context) ([]ItemView, error) {
	prefs, err := s.prefs.ListByLevelWithUsers(ctx, model.LevelLove)
	if err != nil {
		return nil, err
	}
	lovers := make(map[int64][]string)
	for _, p := range prefs {
		name := ""
		if p.User != nil {
			name = p.User.Name
		}
		lovers[p.ItemID] = append(lovers[p.ItemID], name)
	}
	ids := make([]int64, 0, len(lovers))
	for itemID, names := range lovers {
		if len(names) >= 2 {
			ids = append(ids, itemID)
		}
	}
	items, err := s.items.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	views := plainViews(items)
	for i := range views {
		names := append([]string(nil), lovers[views[i].ID]...)
		sort.Strings(names)
		views[i].Lovers = names
		views[i].LoveCount = len(names)
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].LoveCount != views[j].LoveCount {
			return views[i].LoveCount > views[j].LoveCount
		}
		return views[i].Number < views[j].Number
	})
	return views, nil
}
