package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rtuclub/eventdesk/internal/mail"
	"github.com/rtuclub/eventdesk/internal/models"
	"github.com/rtuclub/eventdesk/internal/registrants"
)

var (
	ErrDuplicate    = errors.New("a registrant with this email or roll number already exists")
	ErrInvalidInput = errors.New("invalid registration input")
)

// Registration creates registrants, issues their scan badges and sends the
// confirmation mail.
type Registration struct {
	db      *gorm.DB
	sender  mail.Sender
	baseURL string
}

func NewRegistration(db *gorm.DB, sender mail.Sender, baseURL string) *Registration {
	return &Registration{db: db, sender: sender, baseURL: baseURL}
}

// MemberInput registers someone on the core team.
type MemberInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"rollNumber"`
}

// StudentInput registers a student for one event.
type StudentInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	RollNumber       string `json:"rollNumber"`
	UniversityRollNo string `json:"universityRollNo"`
	Branch           string `json:"branch"`
	Year             string `json:"year"`
	PhoneNumber      string `json:"phoneNumber"`
	EventName        string `json:"eventName"`
}

// RegisterMember creates a core-team registrant with a fresh scan badge.
// Duplicate email or roll number within the member collection is rejected.
func (s *Registration) RegisterMember(ctx context.Context, in MemberInput) (models.Member, error) {
	email, name, roll, err := s.validate(in.Name, in.Email, in.RollNumber)
	if err != nil {
		return models.Member{}, err
	}

	var existing models.Member
	err = s.db.Where("LOWER(email) = ? OR LOWER(roll_number) = LOWER(?)", email, roll).First(&existing).Error
	if err == nil {
		return models.Member{}, ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Member{}, err
	}

	m := models.Member{
		Name:       name,
		Email:      email,
		RollNumber: roll,
		ScanURL:    registrants.ScanURL(s.baseURL, uuid.NewString()),
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Member{}, ErrDuplicate
		}
		return models.Member{}, err
	}

	s.sendConfirmation(ctx, m.Name, m.Email, m.RollNumber, "Core Team Registration", m.ScanURL)
	return m, nil
}

// RegisterStudent creates an event registrant with a fresh scan badge.
func (s *Registration) RegisterStudent(ctx context.Context, in StudentInput) (models.Student, error) {
	email, name, roll, err := s.validate(in.Name, in.Email, in.RollNumber)
	if err != nil {
		return models.Student{}, err
	}
	if strings.TrimSpace(in.EventName) == "" {
		return models.Student{}, fmt.Errorf("%w: event name required", ErrInvalidInput)
	}

	var existing models.Student
	err = s.db.Where("LOWER(email) = ? OR LOWER(roll_number) = LOWER(?) OR (university_roll_no <> '' AND LOWER(university_roll_no) = LOWER(?))",
		email, roll, in.UniversityRollNo).First(&existing).Error
	if err == nil {
		return models.Student{}, ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Student{}, err
	}

	st := models.Student{
		Name:             name,
		Email:            email,
		RollNumber:       roll,
		UniversityRollNo: strings.TrimSpace(in.UniversityRollNo),
		Branch:           strings.TrimSpace(in.Branch),
		Year:             strings.TrimSpace(in.Year),
		PhoneNumber:      strings.TrimSpace(in.PhoneNumber),
		EventName:        strings.TrimSpace(in.EventName),
		ScanURL:          registrants.ScanURL(s.baseURL, uuid.NewString()),
	}
	if err := s.db.WithContext(ctx).Create(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Student{}, ErrDuplicate
		}
		return models.Student{}, err
	}

	s.sendConfirmation(ctx, st.Name, st.Email, st.RollNumber, st.EventName, st.ScanURL)
	return st, nil
}

func (s *Registration) validate(name, email, roll string) (normEmail, normName, normRoll string, err error) {
	normEmail, ok := mail.NormEmail(email)
	if !ok || normEmail == "" {
		return "", "", "", fmt.Errorf("%w: email %q", ErrInvalidInput, email)
	}
	normName = strings.TrimSpace(name)
	normRoll = strings.TrimSpace(roll)
	if normName == "" || normRoll == "" {
		return "", "", "", fmt.Errorf("%w: name and roll number required", ErrInvalidInput)
	}
	return normEmail, normName, normRoll, nil
}

// sendConfirmation mails the badge. A mail failure does not roll back the
// registration; the badge can be re-fetched from the QR endpoint.
func (s *Registration) sendConfirmation(ctx context.Context, name, email, roll, eventName, scanURL string) {
	qrImageURL := scanURLToQRImage(s.baseURL, scanURL)
	msg := mail.Message{
		To:       email,
		Subject:  "Registration Confirmation",
		HTMLBody: mail.RegistrationBody(name, roll, eventName, scanURL, qrImageURL),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		log.Printf("registration: confirmation mail to %s: %v", email, err)
	}
}

func scanURLToQRImage(baseURL, scanURL string) string {
	token := scanURL[strings.LastIndex(scanURL, "/")+1:]
	return strings.TrimRight(baseURL, "/") + "/qr/" + token + ".png"
}
