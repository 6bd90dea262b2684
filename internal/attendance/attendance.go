package attendance

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rtuclub/eventdesk/internal/models"
	"github.com/rtuclub/eventdesk/internal/registrants"
)

// Status reports what a scan did.
type Status string

const (
	StatusMarked        Status = "marked"
	StatusAlreadyMarked Status = "already_marked"
)

var (
	ErrPermissionDenied = errors.New("operator is not authorized to mark attendance")
	ErrEmptyToken       = errors.New("scan token is empty")
)

// Operator identifies the authenticated caller of a scan.
type Operator struct {
	Subject string
	Role    string
}

func (o Operator) privileged() bool {
	return o.Role == "admin"
}

// Result is the outcome of a successful scan. Scanning an already-marked
// badge is a success, not an error.
type Result struct {
	Status     Status
	Registrant registrants.Registrant
}

// Service records same-day attendance marks for scanned badges.
type Service struct {
	db      *gorm.DB
	store   *registrants.Store
	baseURL string
	loc     *time.Location
	now     func() time.Time
}

// NewService creates a recorder. loc is the organization's zone; day
// boundaries are computed in it regardless of the host timezone.
func NewService(db *gorm.DB, baseURL string, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		db:      db,
		store:   registrants.NewStore(db),
		baseURL: baseURL,
		loc:     loc,
		now:     time.Now,
	}
}

func (s *Service) dayKey(t time.Time) string {
	return t.In(s.loc).Format("2006-01-02")
}

// Mark records today's attendance for the registrant behind token. The
// operator must be an admin; that is checked before any lookup. Marking the
// same registrant twice on one calendar day yields one entry, with the
// second call reporting StatusAlreadyMarked.
func (s *Service) Mark(ctx context.Context, op Operator, token string) (Result, error) {
	if !op.privileged() {
		return Result{}, ErrPermissionDenied
	}
	if strings.TrimSpace(token) == "" {
		return Result{}, ErrEmptyToken
	}

	reg, err := s.store.FindByScanURL(registrants.ScanURL(s.baseURL, token))
	if err != nil {
		return Result{}, err
	}

	now := s.now()
	key := s.dayKey(now)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("person_kind = ? AND person_id = ? AND day_key = ?", string(reg.Kind), reg.ID, key).
		Count(&count).Error; err != nil {
		return Result{}, err
	}
	if count > 0 {
		return Result{Status: StatusAlreadyMarked, Registrant: reg}, nil
	}

	entry := models.Attendance{
		PersonKind: string(reg.Kind),
		PersonID:   reg.ID,
		DayKey:     key,
		Date:       now.UTC(), // absolute instant; zone policy can change later
		Present:    true,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		// Two simultaneous scans of one badge can both pass the count check;
		// the unique index collapses the loser into an already-marked outcome.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Result{Status: StatusAlreadyMarked, Registrant: reg}, nil
		}
		return Result{}, err
	}
	return Result{Status: StatusMarked, Registrant: reg}, nil
}
