package service

import (
	"context"
	"errors"
	"time"

	"github.com/karanvir-s/employee-directory-api/internal/domain"
	"github.com/karanvir-s/employee-directory-api/internal/password"
	"github.com/karanvir-s/employee-directory-api/internal/repository"
	"github.com/karanvir-s/employee-directory-api/internal/token"
)

type AuthService struct {
	accountRepo repository.AccountRepository
	codec       *token.Codec
}

func NewAuthService(accountRepo repository.AccountRepository, codec *token.Codec) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		codec:       codec,
	}
}

type RegisterInput struct {
	SequenceID int
	Username   string
	Password   string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Username string
	Token    string
}

// Register creates a new account. No token is issued; the client logs in
// separately. The duplicate error does not reveal whether the sequence ID or
// the username collided.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	if input.SequenceID == 0 || input.Username == "" || input.Password == "" {
		return domain.ErrMissingFields
	}

	existing, err := s.accountRepo.GetByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return domain.ErrUserExists
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return err
	}

	// The unique constraints settle any race with a concurrent registration;
	// the lookup above only provides the common-case early answer.
	return s.accountRepo.Create(ctx, &domain.Account{
		SequenceID:   input.SequenceID,
		Username:     input.Username,
		PasswordHash: hashed,
	})
}

// Login verifies credentials and issues a session token. An unknown username
// and a wrong password return the same error so the two cases cannot be told
// apart by a caller probing for usernames.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	account, err := s.accountRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	tokenString, err := s.codec.Issue(account.SequenceID, account.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Username: account.Username,
		Token:    tokenString,
	}, nil
}

// TokenTTL exposes the session validity window so the transport layer can
// set a matching cookie max-age.
func (s *AuthService) TokenTTL() time.Duration {
	return s.codec.TTL()
}

// WhoAmI refetches the account behind an authenticated principal. A token can
// outlive its account, in which case this reports domain.ErrUserNotFound.
func (s *AuthService) WhoAmI(ctx context.Context, accountID int) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, accountID)
}
