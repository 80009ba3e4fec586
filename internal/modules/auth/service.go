package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"ristorante/internal/domain"
)

type Service struct {
	users  UserRepository
	tokens TokenService
}

func NewService(users UserRepository, tokens TokenService) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// Login verifies the credentials and issues a signed token. Lookup and
// compare failures collapse into one error so the response never reveals
// which side was wrong.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: *user}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
