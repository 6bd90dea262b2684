package config

import (
	"fmt"
	"log"
	"os"
	"time"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Addr      string
	DBPath    string
	BaseURL   string
	AssetsDir string

	// AttendanceTZ is the named zone attendance day boundaries are computed
	// in. EligibilityTZ is the zone the certificate eligibility window is
	// anchored to. They are configured independently and may differ.
	AttendanceTZ  string
	EligibilityTZ string

	AdminUsername string
	AdminPassword string
	JWTIssuer     string
	JWTSigningKey string
	SessionTTL    time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	MailTimeout  time.Duration

	RedisAddr string
}

// Load returns application config populated from environment variables with
// sensible defaults.
func Load() App {
	return App{
		Addr:          getEnv("ADDR", ":8080"),
		DBPath:        getEnv("DB_PATH", "eventdesk.db"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8080"),
		AssetsDir:     getEnv("ASSETS_DIR", "assets"),
		AttendanceTZ:  getEnv("ATTENDANCE_TZ", "Asia/Kolkata"),
		EligibilityTZ: getEnv("ELIGIBILITY_TZ", "Local"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin@rtu"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "change-me"),
		JWTIssuer:     getEnv("JWT_ISSUER", "eventdesk"),
		JWTSigningKey: getEnv("JWT_SIGNING_KEY", "dev-signing-secret-change"),
		SessionTTL:    durationEnv("SESSION_TTL", 7*24*time.Hour),
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      intEnv("SMTP_PORT", 587),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		MailFrom:      getEnv("MAIL_FROM", "events@rtu.example"),
		MailTimeout:   durationEnv("MAIL_TIMEOUT", 15*time.Second),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
	}
}

// AttendanceLocation resolves AttendanceTZ, falling back to a fixed IST
// offset if the tzdata is missing.
func (a App) AttendanceLocation() *time.Location {
	loc, err := time.LoadLocation(a.AttendanceTZ)
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// EligibilityLocation resolves EligibilityTZ. "Local" (the default) keeps the
// host zone.
func (a App) EligibilityLocation() *time.Location {
	if a.EligibilityTZ == "" || a.EligibilityTZ == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(a.EligibilityTZ)
	if err != nil {
		log.Printf("invalid ELIGIBILITY_TZ %q, using host zone", a.EligibilityTZ)
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
