package postgres

import (
	"github.com/karanvir-s/employee-directory-api/internal/domain"
	"github.com/karanvir-s/employee-directory-api/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Map driver unique-violation errors to gorm.ErrDuplicatedKey so the
		// repositories can translate them to domain errors.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Account{},
		&domain.Employee{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Account:  NewAccountRepository(db),
		Employee: NewEmployeeRepository(db),
	}
}
