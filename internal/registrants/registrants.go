package registrants

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rtuclub/eventdesk/internal/models"
)

// Kind discriminates the two registrant collections.
type Kind string

const (
	KindMember  Kind = "member"
	KindStudent Kind = "student"
)

var ErrNotFound = errors.New("registrant not found")

// Registrant is the unified view over the member and student collections.
type Registrant struct {
	Kind       Kind   `json:"kind"`
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"rollNumber"`
	EventName  string `json:"eventName,omitempty"` // empty for members
	ScanURL    string `json:"qrCode"`
}

// ScanURL reconstructs the exact URL embedded in a registrant's QR code.
// Resolution matches the full stored string, so changing the base URL
// invalidates every previously issued badge.
func ScanURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/scan/" + token
}

// Store looks registrants up across both collections.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindByScanURL resolves a scan URL to a registrant. Members are searched
// first, then students; the first exact match wins. Read-only.
func (s *Store) FindByScanURL(url string) (Registrant, error) {
	var m models.Member
	err := s.db.Where("scan_url = ?", url).First(&m).Error
	switch {
	case err == nil:
		return fromMember(m), nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return Registrant{}, err
	}

	var st models.Student
	if err := s.db.Where("scan_url = ?", url).First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Registrant{}, ErrNotFound
		}
		return Registrant{}, err
	}
	return fromStudent(st), nil
}

// FindByRollNumber does a case-insensitive exact match on roll number or
// university roll number, members first.
func (s *Store) FindByRollNumber(roll string) (Registrant, error) {
	roll = strings.TrimSpace(roll)

	var m models.Member
	err := s.db.Where("LOWER(roll_number) = LOWER(?)", roll).First(&m).Error
	switch {
	case err == nil:
		return fromMember(m), nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return Registrant{}, err
	}

	var st models.Student
	if err := s.db.Where("LOWER(roll_number) = LOWER(?) OR LOWER(university_roll_no) = LOWER(?)", roll, roll).
		First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Registrant{}, ErrNotFound
		}
		return Registrant{}, err
	}
	return fromStudent(st), nil
}

// FindByEmail does a case-insensitive exact match on email, students first.
func (s *Store) FindByEmail(email string) (Registrant, error) {
	email = strings.TrimSpace(email)

	var st models.Student
	err := s.db.Where("LOWER(email) = LOWER(?)", email).First(&st).Error
	switch {
	case err == nil:
		return fromStudent(st), nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return Registrant{}, err
	}

	var m models.Member
	if err := s.db.Where("LOWER(email) = LOWER(?)", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Registrant{}, ErrNotFound
		}
		return Registrant{}, err
	}
	return fromMember(m), nil
}

// Attendance returns the registrant's attendance entries, oldest first.
func (s *Store) Attendance(r Registrant) ([]models.Attendance, error) {
	var entries []models.Attendance
	err := s.db.Where("person_kind = ? AND person_id = ?", string(r.Kind), r.ID).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func fromMember(m models.Member) Registrant {
	return Registrant{
		Kind:       KindMember,
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		RollNumber: m.RollNumber,
		ScanURL:    m.ScanURL,
	}
}

func fromStudent(st models.Student) Registrant {
	return Registrant{
		Kind:       KindStudent,
		ID:         st.ID,
		Name:       st.Name,
		Email:      st.Email,
		RollNumber: st.RollNumber,
		EventName:  st.EventName,
		ScanURL:    st.ScanURL,
	}
}
