package handlers

import (
	"time"

	"HeritagePartage/internal/model"
	"HeritagePartage/internal/service"
)

// JSON shapes of the API. One canonical item shape carries optional
// enrichment fields instead of four overlapping response types.

type UserDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type PhotoDTO struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"itemId"`
	Data      string    `json:"data"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

type ItemDTO struct {
	ID          int64      `json:"id"`
	Number      int        `json:"number"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Value       *float64   `json:"value"`
	CreatedBy   int64      `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
	DeletedBy   *int64     `json:"deletedBy,omitempty"`
	Photos      []PhotoDTO `json:"photos"`

	// Enrichments of the filtered views.
	DeletedByName  *string  `json:"deletedByName,omitempty"`
	Lovers         []string `json:"lovers,omitempty"`
	LoveCount      int      `json:"loveCount,omitempty"`
	UserPreference *string  `json:"userPreference,omitempty"`
}

type CommentAuthorDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CommentDTO struct {
	ID        int64            `json:"id"`
	ItemID    int64            `json:"itemId"`
	UserID    int64            `json:"userId"`
	Text      string           `json:"text"`
	CreatedAt time.Time        `json:"createdAt"`
	User      CommentAuthorDTO `json:"user"`
}

type PreferenceUserDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type PreferenceDTO struct {
	ID        int64              `json:"id"`
	ItemID    int64              `json:"itemId"`
	UserID    int64              `json:"userId"`
	Level     string             `json:"level"`
	UpdatedAt time.Time          `json:"updatedAt"`
	User      *PreferenceUserDTO `json:"user,omitempty"`
}

type RepartitionStatDTO struct {
	UserID         int64   `json:"userId"`
	UserName       string  `json:"userName"`
	UserRole       string  `json:"userRole"`
	ItemCount      int     `json:"itemCount"`
	ItemsWithValue int     `json:"itemsWithValue"`
	TotalValue     float64 `json:"totalValue"`
	MaybeCount     int     `json:"maybeCount"`
	MaybeWithValue int     `json:"maybeWithValue"`
	MaybeValue     float64 `json:"maybeValue"`
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Role: u.Role, CreatedAt: u.CreatedAt}
}

func toPhotoDTO(p *model.Photo) PhotoDTO {
	return PhotoDTO{ID: p.ID, ItemID: p.ItemID, Data: p.Data, Position: p.Position, CreatedAt: p.CreatedAt}
}

func toItemDTO(it *model.Item) ItemDTO {
	dto := ItemDTO{
		ID:          it.ID,
		Number:      it.Number,
		Title:       it.Title,
		Description: it.Description,
		CreatedBy:   it.CreatedBy,
		CreatedAt:   it.CreatedAt,
		DeletedAt:   it.DeletedAt,
		DeletedBy:   it.DeletedBy,
		Photos:      make([]PhotoDTO, 0, len(it.Photos)),
	}
	if it.Value != nil {
		v := it.Value.InexactFloat64()
		dto.Value = &v
	}
	for i := range it.Photos {
		dto.Photos = append(dto.Photos, toPhotoDTO(&it.Photos[i]))
	}
	return dto
}

func toItemViewDTO(v *service.ItemView) ItemDTO {
	dto := toItemDTO(&v.Item)
	dto.DeletedByName = v.DeletedByName
	dto.Lovers = v.Lovers
	dto.LoveCount = v.LoveCount
	dto.UserPreference = v.UserPreference
	return dto
}

func toCommentDTO(c *model.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        c.ID,
		ItemID:    c.ItemID,
		UserID:    c.UserID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		User:      CommentAuthorDTO{ID: c.UserID},
	}
	if c.User != nil {
		dto.User.Name = c.User.Name
	}
	return dto
}

func toPreferenceDTO(p *model.Preference) PreferenceDTO {
	dto := PreferenceDTO{
		ID:        p.ID,
		ItemID:    p.ItemID,
		UserID:    p.UserID,
		Level:     p.Level,
		UpdatedAt: p.UpdatedAt,
	}
	if p.User != nil {
		dto.User = &PreferenceUserDTO{ID: p.User.ID, Name: p.User.Name, Role: p.User.Role}
	}
	return dto
}

func toRepartitionDTO(st *service.RepartitionStat) RepartitionStatDTO {
	return RepartitionStatDTO{
		UserID:         st.UserID,
		UserName:       st.UserName,
		UserRole:       st.UserRole,
		ItemCount:      st.ItemCount,
		ItemsWithValue: st.ItemsWithValue,
		TotalValue:     st.TotalValue.InexactFloat64(),
		MaybeCount:     st.MaybeCount,
		MaybeWithValue: st.MaybeWithValue,
		MaybeValue:     st.MaybeValue.InexactFloat64(),
	}
}
