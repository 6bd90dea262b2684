package attendance

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/rtuclub/eventdesk/internal/db"
	"github.com/rtuclub/eventdesk/internal/models"
	"github.com/rtuclub/eventdesk/internal/registrants"
)

const baseURL = "https://events.rtu.example"

var admin = Operator{Subject: "admin@rtu", Role: "admin"}

func newService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	ist := time.FixedZone("IST", 5*3600+1800)
	return NewService(gdb, baseURL, ist), gdb
}

func seedStudent(t *testing.T, gdb *gorm.DB, token string) {
	t.Helper()
	st := models.Student{
		Name:       "Ravi",
		Email:      "ravi@rtu.example",
		RollNumber: "ST-01",
		EventName:  "Startup School",
		ScanURL:    registrants.ScanURL(baseURL, token),
	}
	if err := gdb.Create(&st).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
}

func TestMark_SameDayIdempotent(t *testing.T) {
	svc, gdb := newService(t)
	seedStudent(t, gdb, "tok-1")

	at := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	res, err := svc.Mark(context.Background(), admin, "tok-1")
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if res.Status != StatusMarked {
		t.Errorf("first mark: want %s, got %s", StatusMarked, res.Status)
	}

	// Second scan later the same day reports already_marked and adds no row.
	svc.now = func() time.Time { return at.Add(3 * time.Hour) }
	res, err = svc.Mark(context.Background(), admin, "tok-1")
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if res.Status != StatusAlreadyMarked {
		t.Errorf("second mark: want %s, got %s", StatusAlreadyMarked, res.Status)
	}

	var count int64
	gdb.Model(&models.Attendance{}).Count(&count)
	if count != 1 {
		t.Errorf("want 1 attendance row, got %d", count)
	}
}

func TestMark_DistinctDaysAccumulate(t *testing.T) {
	svc, gdb := newService(t)
	seedStudent(t, gdb, "tok-1")

	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		day := base.AddDate(0, 0, i)
		svc.now = func() time.Time { return day }
		res, err := svc.Mark(context.Background(), admin, "tok-1")
		if err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
		if res.Status != StatusMarked {
			t.Errorf("day %d: want %s, got %s", i, StatusMarked, res.Status)
		}
	}

	var count int64
	gdb.Model(&models.Attendance{}).Count(&count)
	if count != 3 {
		t.Errorf("want 3 attendance rows, got %d", count)
	}
}

// TestMark_DayBoundaryInOrgZone pins the day boundary to the service's zone,
// not UTC. 19:00 and 20:00 UTC straddle midnight in IST (UTC+5:30), so the
// two scans land on different calendar days and both are fresh marks.
func TestMark_DayBoundaryInOrgZone(t *testing.T) {
	svc, gdb := newService(t)
	seedStudent(t, gdb, "tok-1")

	svc.now = func() time.Time { return time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC) } // IST 23:30, Mar 10
	if res, err := svc.Mark(context.Background(), admin, "tok-1"); err != nil || res.Status != StatusMarked {
		t.Fatalf("evening scan: status=%v err=%v", res.Status, err)
	}

	svc.now = func() time.Time { return time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC) } // IST 00:30, Mar 11
	res, err := svc.Mark(context.Background(), admin, "tok-1")
	if err != nil {
		t.Fatalf("after-midnight scan: %v", err)
	}
	if res.Status != StatusMarked {
		t.Errorf("after-midnight scan: want %s, got %s", StatusMarked, res.Status)
	}

	var count int64
	gdb.Model(&models.Attendance{}).Count(&count)
	if count != 2 {
		t.Errorf("want 2 attendance rows, got %d", count)
	}
}

func TestMark_PermissionDenied(t *testing.T) {
	svc, gdb := newService(t)
	seedStudent(t, gdb, "tok-1")

	for _, op := range []Operator{
		{Subject: "viewer@rtu", Role: "viewer"},
		{Subject: "anon"},
	} {
		if _, err := svc.Mark(context.Background(), op, "tok-1"); !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("role %q: want ErrPermissionDenied, got %v", op.Role, err)
		}
	}

	var count int64
	gdb.Model(&models.Attendance{}).Count(&count)
	if count != 0 {
		t.Errorf("denied scans must not write rows, got %d", count)
	}
}

func TestMark_EmptyToken(t *testing.T) {
	svc, _ := newService(t)

	for _, token := range []string{"", "   "} {
		if _, err := svc.Mark(context.Background(), admin, token); !errors.Is(err, ErrEmptyToken) {
			t.Errorf("token %q: want ErrEmptyToken, got %v", token, err)
		}
	}
}

func TestMark_UnknownToken(t *testing.T) {
	svc, gdb := newService(t)
	seedStudent(t, gdb, "tok-1")

	if _, err := svc.Mark(context.Background(), admin, "no-such-token"); !errors.Is(err, registrants.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}

	var count int64
	gdb.Model(&models.Attendance{}).Count(&count)
	if count != 0 {
		t.Errorf("failed scan must not write rows, got %d", count)
	}
}

// TestMark_RaceLosesToUniqueIndex simulates two scans passing the count
// check together: a pre-inserted row for today's day key makes the insert
// collide, which must surface as already_marked, not an error.
func TestMark_RaceLosesToUniqueIndex(t *testing.T) {
	svc, gdb := newService(t)
	seedStudent(t, gdb, "tok-1")

	at := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	reg, err := svc.store.FindByScanURL(registrants.ScanURL(baseURL, "tok-1"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	row := models.Attendance{
		PersonKind: string(reg.Kind),
		PersonID:   reg.ID,
		DayKey:     svc.dayKey(at),
		Date:       at,
		Present:    true,
	}
	if err := gdb.Create(&row).Error; err != nil {
		t.Fatalf("pre-insert: %v", err)
	}

	// Bypass the count check to hit the unique index directly.
	dup := models.Attendance{
		PersonKind: row.PersonKind,
		PersonID:   row.PersonID,
		DayKey:     row.DayKey,
		Date:       at,
		Present:    true,
	}
	err = gdb.Create(&dup).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("want gorm.ErrDuplicatedKey from duplicate insert, got %v", err)
	}

	res, err := svc.Mark(context.Background(), admin, "tok-1")
	if err != nil {
		t.Fatalf("mark after race: %v", err)
	}
	if res.Status != StatusAlreadyMarked {
		t.Errorf("want %s, got %s", StatusAlreadyMarked, res.Status)
	}
}
