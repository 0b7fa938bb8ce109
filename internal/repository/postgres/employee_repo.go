package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/karanvir-s/employee-directory-api/internal/domain"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *employeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	err := r.db.WithContext(ctx).Create(employee).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmployeeEmailExists
	}
	return err
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.WithContext(ctx).First(&employee, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	var employees []*domain.Employee
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	err := r.db.WithContext(ctx).Save(employee).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmployeeEmailExists
	}
	return err
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
