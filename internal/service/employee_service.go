package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/karanvir-s/employee-directory-api/internal/domain"
	"github.com/karanvir-s/employee-directory-api/internal/repository"
	"github.com/karanvir-s/employee-directory-api/internal/storage"
	"gorm.io/datatypes"
)

type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	store        storage.Storage
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository, store storage.Storage) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		store:        store,
	}
}

type EmployeeInput struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Courses     []string
}

// ImageUpload is an in-memory uploaded file. Multipart uploads are capped by
// the server's form size limit before they reach the service.
type ImageUpload struct {
	Filename string
	Data     []byte
}

func (s *EmployeeService) Create(ctx context.Context, input EmployeeInput, image *ImageUpload) (*domain.Employee, error) {
	if input.Name == "" || input.Email == "" || input.Mobile == "" ||
		input.Designation == "" || input.Gender == "" || len(input.Courses) == 0 {
		return nil, domain.ErrMissingFields
	}

	existing, err := s.employeeRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmployeeEmailExists
	}

	imageRef, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}

	courses, err := json.Marshal(input.Courses)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		ID:          uuid.New(),
		Name:        input.Name,
		Email:       input.Email,
		Mobile:      input.Mobile,
		Designation: input.Designation,
		Gender:      input.Gender,
		Courses:     datatypes.JSON(courses),
		Image:       imageRef,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// Update overwrites only the fields present in input; empty fields keep their
// stored values. A new image replaces the stored reference.
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, input EmployeeInput, image *ImageUpload) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		employee.Name = input.Name
	}
	if input.Email != "" {
		employee.Email = input.Email
	}
	if input.Mobile != "" {
		employee.Mobile = input.Mobile
	}
	if input.Designation != "" {
		employee.Designation = input.Designation
	}
	if input.Gender != "" {
		employee.Gender = input.Gender
	}
	if len(input.Courses) > 0 {
		courses, err := json.Marshal(input.Courses)
		if err != nil {
			return nil, err
		}
		employee.Courses = datatypes.JSON(courses)
	}

	imageRef, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}
	if imageRef != "" {
		employee.Image = imageRef
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeService) storeImage(ctx context.Context, image *ImageUpload) (string, error) {
	if image == nil {
		return "", nil
	}

	contentType, err := storage.SniffImage(image.Data)
	if err != nil {
		return "", err
	}

	return s.store.Save(ctx, image.Filename, contentType, bytes.NewReader(image.Data))
}
