package mail

import (
	"strings"
	"testing"
)

func TestNormEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"  Ravi@RTU.Example ", "ravi@rtu.example", true},
		{"", "", true},
		{"not-an-email", "not-an-email", false},
		{"a@b", "a@b", true},
	}
	for _, c := range cases {
		got, ok := NormEmail(c.in)
		if ok != c.ok {
			t.Errorf("NormEmail(%q): ok=%v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("NormEmail(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBodies(t *testing.T) {
	body := RegistrationBody("Ravi", "ST-01", "Startup School", "https://x/scan/t", "https://x/qr/t.png")
	for _, want := range []string{"Ravi", "Startup School", "ST-01", "https://x/scan/t", "https://x/qr/t.png"} {
		if !strings.Contains(body, want) {
			t.Errorf("registration body lacks %q", want)
		}
	}

	body = ReminderBody("Ravi", "Startup School", "RTU Campus, Kota", "Monday, March 10, 2025 at 3:00 PM")
	for _, want := range []string{"Startup School", "RTU Campus, Kota", "Monday, March 10, 2025"} {
		if !strings.Contains(body, want) {
			t.Errorf("reminder body lacks %q", want)
		}
	}

	body = CertificateBody("Ravi", "Startup School")
	if !strings.Contains(body, "certificate") {
		t.Errorf("certificate body lacks the word certificate")
	}
}
