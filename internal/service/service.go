package service

import (
	"context"
	"errors"
	"strings"

	"HeritagePartage/internal/model"
	"HeritagePartage/internal/repo"

	"gorm.io/gorm"
)

// requireUser resolves the caller-asserted user id. The header value is
// taken at face value, but it must reference an existing member.
func requireUser(ctx context.Context, users repo.UserRepository, id int64) (*model.User, error) {
	if id <= 0 {
		return nil, ErrUnauthenticated
	}
	u, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return u, nil
}

// normalizeText trims the string and turns whitespace-only input into nil.
func normalizeText(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

// validatePhotoData checks that the payload is an inline base64 image data
// URL within the configured size cap.
func validatePhotoData(data string, maxBytes int) error {
	if !strings.HasPrefix(data, "data:image/") || !strings.Contains(data, ";base64,") {
		return Validationf("photo invalide: data URL base64 attendue")
	}
	if len(data) > maxBytes {
		return Validationf("photo trop volumineuse (limite %d Mo)", maxBytes/(1024*1024))
	}
	return nil
}
