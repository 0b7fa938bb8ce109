package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/karanvir-s/employee-directory-api/internal/domain"
	"github.com/karanvir-s/employee-directory-api/internal/service"
)

type EmployeeHandler struct {
	employeeService *service.EmployeeService
	maxUploadBytes  int64
}

func NewEmployeeHandler(employeeService *service.EmployeeService, maxUploadBytes int64) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		maxUploadBytes:  maxUploadBytes,
	}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, image, err := h.parseForm(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	employee, err := h.employeeService.Create(r.Context(), input, image)
	if err != nil {
		h.writeEmployeeError(w, "employee.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"msg":      "Employee created successfully",
		"employee": employee,
	})
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [employee.List] %v", err)
		writeError(w, http.StatusInternalServerError, "Error fetching employees")
		return
	}

	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}

	employee, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		h.writeEmployeeError(w, "employee.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}

	input, image, err := h.parseForm(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	employee, err := h.employeeService.Update(r.Context(), id, input, image)
	if err != nil {
		h.writeEmployeeError(w, "employee.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"msg":      "Employee updated successfully",
		"employee": employee,
	})
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		h.writeEmployeeError(w, "employee.Delete", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Employee deleted successfully"})
}

// parseForm reads the multipart employee form. The image part is optional;
// the course field may repeat.
func (h *EmployeeHandler) parseForm(w http.ResponseWriter, r *http.Request) (service.EmployeeInput, *service.ImageUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return service.EmployeeInput{}, nil, err
	}

	input := service.EmployeeInput{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Mobile:      r.FormValue("mobile"),
		Designation: r.FormValue("designation"),
		Gender:      r.FormValue("gender"),
		Courses:     r.MultipartForm.Value["course"],
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return input, nil, nil
		}
		return service.EmployeeInput{}, nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return service.EmployeeInput{}, nil, err
	}

	return input, &service.ImageUpload{Filename: header.Filename, Data: data}, nil
}

func (h *EmployeeHandler) writeEmployeeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, domain.ErrEmployeeEmailExists):
		writeError(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, domain.ErrUnsupportedImage):
		writeError(w, http.StatusBadRequest, "Only jpg and png files allowed")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		writeError(w, http.StatusNotFound, "Employee not found")
	default:
		log.Printf("ERROR [%s] %v", op, err)
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}
