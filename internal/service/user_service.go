package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopkart/internal/cache"
	apperrors "shopkart/internal/errors"
	"shopkart/internal/model"
	"shopkart/internal/repository"
)

// UserService exposes profile operations for authenticated users.
type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateAddress(ctx context.Context, id uuid.UUID, address model.Address) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

// GetProfile loads a user by id, cached for a few minutes. The password hash
// stays out of responses via the model's JSON tags.
func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, cache.UserKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, cache.UserKey(id), payload, cache.DefaultTTL)
	}
	return user, nil
}

// UpdateAddress replaces the user's address sub-record wholesale and returns
// the updated user. Fields absent from the new address do not survive from
// the old one.
func (s *userService) UpdateAddress(ctx context.Context, id uuid.UUID, address model.Address) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.Address = address
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.UserKey(id))
	return user, nil
}
