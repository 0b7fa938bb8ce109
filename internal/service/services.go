package service

import (
	"github.com/karanvir-s/employee-directory-api/internal/repository"
	"github.com/karanvir-s/employee-directory-api/internal/storage"
	"github.com/karanvir-s/employee-directory-api/internal/token"
)

type Services struct {
	Auth     *AuthService
	Employee *EmployeeService
}

func NewServices(repos *repository.Repositories, codec *token.Codec, store storage.Storage) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Account, codec),
		Employee: NewEmployeeService(repos.Employee, store),
	}
}
