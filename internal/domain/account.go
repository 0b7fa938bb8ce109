package domain

import "time"

// Account is a login credential record. The sequence ID is supplied by the
// client at registration and doubles as the primary key, so both it and the
// username carry uniqueness constraints.
type Account struct {
	SequenceID   int       `json:"sequenceId" gorm:"primaryKey;autoIncrement:false"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
}
