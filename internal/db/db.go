package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rtuclub/eventdesk/internal/models"
)

var conn *gorm.DB

// Init opens the shared connection used by the server wiring. Tests open
// their own databases with Open instead.
func Init(path string) error {
	gdb, err := Open(path)
	if err != nil {
		return err
	}
	conn = gdb
	log.Println("database ready (sqlite)")
	return nil
}

// Open opens a sqlite database at path and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surfaces unique violations as gorm.ErrDuplicatedKey; the
		// attendance recorder relies on this.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := gdb.AutoMigrate(
		&models.Member{},
		&models.Student{},
		&models.Event{},
		&models.Attendance{},
	); err != nil {
		return nil, err
	}

	// Lookup index that GORM doesn't auto-create from struct tags.
	gdb.Exec("CREATE INDEX IF NOT EXISTS idx_attendance_person ON attendances(person_kind, person_id)")

	return gdb, nil
}

func Conn() *gorm.DB {
	return conn
}
