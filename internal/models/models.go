package models

import "time"

// Member is a core-team registrant.
type Member struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name       string `gorm:"not null"`
	Email      string `gorm:"uniqueIndex;not null"`
	RollNumber string `gorm:"uniqueIndex;not null"`
	ScanURL    string `gorm:"uniqueIndex"` // full QR payload, immutable once issued
}

// Student is an event registrant.
type Student struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name             string `gorm:"not null"`
	Email            string `gorm:"uniqueIndex;not null"`
	RollNumber       string `gorm:"uniqueIndex;not null"`
	UniversityRollNo string
	Branch           string
	Year             string
	PhoneNumber      string
	EventName        string `gorm:"index"` // links to Event by name, not id
	ScanURL          string `gorm:"uniqueIndex"`
}

type Event struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	EventName       string    `gorm:"uniqueIndex;not null"`
	EventDate       time.Time `gorm:"not null"`
	Motive          string
	RegistrationFee string // free-form: "Free", "₹100", ...
}

// Attendance is one calendar-day mark for a registrant. Date is the absolute
// instant (UTC); DayKey is that instant's calendar day in the configured
// attendance timezone. The composite unique index is what makes same-day
// marking atomic: a second insert for the same person and day fails instead
// of producing a duplicate entry.
type Attendance struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	PersonKind string    `gorm:"not null;uniqueIndex:idx_attendance_person_day"`
	PersonID   uint      `gorm:"not null;uniqueIndex:idx_attendance_person_day"`
	DayKey     string    `gorm:"not null;uniqueIndex:idx_attendance_person_day"`
	Date       time.Time `gorm:"not null;index"`
	Present    bool
}
