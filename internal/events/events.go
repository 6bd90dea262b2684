package events

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rtuclub/eventdesk/internal/models"
)

var (
	ErrNotFound  = errors.New("event not found")
	ErrDuplicate = errors.New("an event with this name already exists")
)

// Store owns event records and the eligibility query. It is the only place
// that resolves the event-name linkage to students.
type Store struct {
	db  *gorm.DB
	loc *time.Location // zone the eligibility window is anchored to
}

func NewStore(db *gorm.DB, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{db: db, loc: loc}
}

// Location is the zone used for eligibility windows and date display.
func (s *Store) Location() *time.Location {
	return s.loc
}

func (s *Store) Create(e *models.Event) error {
	if err := s.db.Create(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *Store) Get(id uint) (models.Event, error) {
	var ev models.Event
	if err := s.db.First(&ev, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, err
	}
	return ev, nil
}

// List returns all events, newest first.
func (s *Store) List() ([]models.Event, error) {
	var evs []models.Event
	err := s.db.Order("created_at DESC").Find(&evs).Error
	return evs, err
}

// Delete removes an event. Students keep their event_name reference;
// deletion does not cascade.
func (s *Store) Delete(id uint) error {
	res := s.db.Delete(&models.Event{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Window is the 24-hour eligibility span for the event: midnight of the
// event's calendar day in the store's zone, exclusive of the next midnight.
func (s *Store) Window(ev models.Event) (start, end time.Time) {
	d := ev.EventDate.In(s.loc)
	start = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
	return start, start.Add(24 * time.Hour)
}

// Eligible returns the event and the students registered to it (by name)
// with at least one attendance instant inside the event-day window. An empty
// slice is a valid outcome, distinct from ErrNotFound.
func (s *Store) Eligible(id uint) (models.Event, []models.Student, error) {
	ev, err := s.Get(id)
	if err != nil {
		return models.Event{}, nil, err
	}
	start, end := s.Window(ev)

	var students []models.Student
	err = s.db.Table("students").
		Select("DISTINCT students.*").
		Joins("JOIN attendances ON attendances.person_kind = ? AND attendances.person_id = students.id", "student").
		Where("students.event_name = ?", ev.EventName).
		Where("attendances.date >= ? AND attendances.date < ?", start, end).
		Order("students.id").
		Scan(&students).Error
	if err != nil {
		return models.Event{}, nil, err
	}
	return ev, students, nil
}

// Registered returns every student registered to the event, attended or not.
func (s *Store) Registered(ev models.Event) ([]models.Student, error) {
	var students []models.Student
	err := s.db.Where("event_name = ?", ev.EventName).Order("id").Find(&students).Error
	return students, err
}

// AttendanceRow is one line of the per-event attendance report.
type AttendanceRow struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	RollNumber       string `json:"rollNumber"`
	UniversityRollNo string `json:"universityRollNo"`
	Branch           string `json:"branch"`
	Year             string `json:"year"`
	PhoneNumber      string `json:"phoneNumber"`
	AttendanceCount  int    `json:"attendanceCount"`
}

// AttendanceReport lists the event's students with how many days each has
// attended.
func (s *Store) AttendanceReport(id uint) (models.Event, []AttendanceRow, error) {
	ev, err := s.Get(id)
	if err != nil {
		return models.Event{}, nil, err
	}

	var rows []AttendanceRow
	err = s.db.Table("students").
		Select(`students.name, students.email, students.roll_number, students.university_roll_no,
			students.branch, students.year, students.phone_number,
			COUNT(attendances.id) AS attendance_count`).
		Joins("LEFT JOIN attendances ON attendances.person_kind = 'student' AND attendances.person_id = students.id").
		Where("students.event_name = ?", ev.EventName).
		Group("students.id").
		Order("students.name").
		Scan(&rows).Error
	if err != nil {
		return models.Event{}, nil, err
	}
	return ev, rows, nil
}
