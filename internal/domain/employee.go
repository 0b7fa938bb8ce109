package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Employee is a directory record. Courses is a JSON array of course names and
// Image holds a storage reference (local filename or object URL), empty when
// no image was attached.
type Employee struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	Name        string         `json:"name" gorm:"not null"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Mobile      string         `json:"mobile"`
	Designation string         `json:"designation"`
	Gender      string         `json:"gender"`
	Courses     datatypes.JSON `json:"course" gorm:"type:jsonb"`
	Image       string         `json:"image"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
