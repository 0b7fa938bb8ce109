package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/karanvir-s/employee-directory-api/internal/domain"
	"github.com/karanvir-s/employee-directory-api/internal/password"
)

// AccountBuilder creates test accounts with a builder pattern
type AccountBuilder struct {
	sequenceID int
	username   string
	password   string
}

// NewAccountBuilder creates a new AccountBuilder with default values
func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		sequenceID: 1 + rand.Intn(1_000_000),
		username:   fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password:   "testpassword123",
	}
}

// WithSequenceID sets the sequence ID
func (b *AccountBuilder) WithSequenceID(id int) *AccountBuilder {
	b.sequenceID = id
	return b
}

// WithUsername sets the username
func (b *AccountBuilder) WithUsername(username string) *AccountBuilder {
	b.username = username
	return b
}

// WithPassword sets the password
func (b *AccountBuilder) WithPassword(pw string) *AccountBuilder {
	b.password = pw
	return b
}

// Build creates the account in the database and returns it with the raw password
func (b *AccountBuilder) Build(t *testing.T, db *gorm.DB) (*domain.Account, string) {
	t.Helper()

	hashed, err := password.Hash(b.password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	account := &domain.Account{
		SequenceID:   b.sequenceID,
		Username:     b.username,
		PasswordHash: hashed,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	return account, b.password
}

// Login registers (if needed) and logs the account in via the API, returning
// the session cookie the server set.
func (b *AccountBuilder) Login(t *testing.T, ts *TestServer) (*domain.Account, *http.Cookie) {
	t.Helper()

	account, rawPassword := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"username": account.Username,
		"secret":   rawPassword,
	})

	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status: %d", resp.StatusCode)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" {
			return account, cookie
		}
	}

	t.Fatal("login response did not set a token cookie")
	return nil, nil
}

// EmployeeBuilder creates test employees with a builder pattern
type EmployeeBuilder struct {
	name        string
	email       string
	mobile      string
	designation string
	gender      string
	courses     []string
	createdAt   time.Time
}

// NewEmployeeBuilder creates a new EmployeeBuilder with default values
func NewEmployeeBuilder() *EmployeeBuilder {
	return &EmployeeBuilder{
		name:        "Test Employee",
		email:       fmt.Sprintf("employee_%s@example.com", uuid.New().String()[:8]),
		mobile:      "5551234567",
		designation: "Developer",
		gender:      "F",
		courses:     []string{"BSC"},
		createdAt:   time.Now(),
	}
}

// WithName sets the name
func (b *EmployeeBuilder) WithName(name string) *EmployeeBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *EmployeeBuilder) WithEmail(email string) *EmployeeBuilder {
	b.email = email
	return b
}

// WithCreatedAt sets the creation timestamp, for list-ordering tests
func (b *EmployeeBuilder) WithCreatedAt(ts time.Time) *EmployeeBuilder {
	b.createdAt = ts
	return b
}

// Build creates the employee in the database
func (b *EmployeeBuilder) Build(t *testing.T, db *gorm.DB) *domain.Employee {
	t.Helper()

	courses, err := json.Marshal(b.courses)
	if err != nil {
		t.Fatalf("failed to marshal courses: %v", err)
	}

	employee := &domain.Employee{
		ID:          uuid.New(),
		Name:        b.name,
		Email:       b.email,
		Mobile:      b.mobile,
		Designation: b.designation,
		Gender:      b.gender,
		Courses:     datatypes.JSON(courses),
		CreatedAt:   b.createdAt,
		UpdatedAt:   b.createdAt,
	}

	if err := db.Create(employee).Error; err != nil {
		t.Fatalf("failed to create employee: %v", err)
	}

	return employee
}
