package main

import (
	"log"
	"net/http"

	"github.com/rtuclub/eventdesk/internal/attendance"
	"github.com/rtuclub/eventdesk/internal/config"
	"github.com/rtuclub/eventdesk/internal/db"
	"github.com/rtuclub/eventdesk/internal/distribution"
	"github.com/rtuclub/eventdesk/internal/events"
	"github.com/rtuclub/eventdesk/internal/handlers"
	"github.com/rtuclub/eventdesk/internal/lock"
	"github.com/rtuclub/eventdesk/internal/mail"
	"github.com/rtuclub/eventdesk/internal/registrants"
	"github.com/rtuclub/eventdesk/internal/services"
	"github.com/rtuclub/eventdesk/internal/web"
)

func main() {
	cfg := config.Load()

	if err := db.Init(cfg.DBPath); err != nil {
		log.Fatalf("db init: %v", err)
	}
	gdb := db.Conn()

	sender, err := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
		Timeout:  cfg.MailTimeout,
	})
	if err != nil {
		log.Fatalf("mail client: %v", err)
	}

	var locker lock.Locker = lock.NewLocal()
	if cfg.RedisAddr != "" {
		locker = lock.NewRedis(cfg.RedisAddr)
	}

	evStore := events.NewStore(gdb, cfg.EligibilityLocation())

	api := &handlers.API{
		Cfg:          cfg,
		Attendance:   attendance.NewService(gdb, cfg.BaseURL, cfg.AttendanceLocation()),
		Events:       evStore,
		Registrants:  registrants.NewStore(gdb),
		Registration: services.NewRegistration(gdb, sender, cfg.BaseURL),
		Distribution: distribution.NewService(evStore, sender, locker, cfg.AssetsDir),
	}

	log.Printf("eventdesk listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, web.Router(api)); err != nil {
		log.Fatal(err)
	}
}
