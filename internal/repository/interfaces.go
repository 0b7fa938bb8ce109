package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/karanvir-s/employee-directory-api/internal/domain"
)

type AccountRepository interface {
	// Create persists a new account. Uniqueness of both the sequence ID and
	// the username is enforced by the storage layer, so a lost race between
	// concurrent registrations surfaces as domain.ErrUserExists.
	Create(ctx context.Context, account *domain.Account) error
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByID(ctx context.Context, id int) (*domain.Account, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	// List returns all employees, newest first.
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	Account  AccountRepository
	Employee EmployeeRepository
}
