package auth

import (
	"context"

	"ristorante/internal/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type TokenService interface {
	GenerateToken(userID int64, role domain.UserRole) (string, error)
}
