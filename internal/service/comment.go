package service

import (
	"context"
	"errors"
	"strings"

	"HeritagePartage/internal/model"
	"HeritagePartage/internal/repo"

	"gorm.io/gorm"
)

// CommentService owns the comment rules: any identified member may write,
// only the author may delete.
type CommentService struct {
	comments repo.CommentRepository
	items    repo.ItemRepository
	users    repo.UserRepository
}

func NewCommentService(comments repo.CommentRepository, items repo.ItemRepository, users repo.UserRepository) *CommentService {
	return &CommentService{comments: comments, items: items, users: users}
}

// List returns the item's comments in chronological order.
func (s *CommentService) List(ctx context.Context, itemID int64) ([]model.Comment, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.comments.ListByItem(ctx, itemID)
}

// Create appends a comment by the caller.
func (s *CommentService) Create(ctx context.Context, callerID, itemID int64, text string) (*model.Comment, error) {
	if _, err := requireUser(ctx, s.users, callerID); err != nil {
		return nil, err
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, Validationf("le commentaire ne peut pas être vide")
	}
	return s.comments.Create(ctx, &model.Comment{ItemID: itemID, UserID: callerID, Text: text})
}

// Delete removes the caller's own comment; anyone else gets ErrForbidden.
func (s *CommentService) Delete(ctx context.Context, callerID, itemID, commentID int64) error {
	if _, err := requireUser(ctx, s.users, callerID); err != nil {
		return err
	}
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if c.ItemID != itemID {
		return ErrNotFound
	}
	if c.UserID != callerID {
		return ErrForbidden
	}
	return s.comments.Delete(ctx, commentID)
}
