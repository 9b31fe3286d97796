package auth

import (
	"context"

	"carservice/internal/domain"
)

// UserRepositoryInterface defines the interface for admin user lookup
type UserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
