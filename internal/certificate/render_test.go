package certificate_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rtuclub/eventdesk/internal/certificate"
	"github.com/rtuclub/eventdesk/internal/models"
)

// writeAssets lays out a minimal assets directory: a solid background image
// plus the two fonts, using the Go font files as stand-ins.
func writeAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	bg := image.NewRGBA(image.Rect(0, 0, 600, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 600; x++ {
			bg.Set(x, y, color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, bg); err != nil {
		t.Fatalf("encode background: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, certificate.BackgroundFile), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write background: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "fonts"), 0o755); err != nil {
		t.Fatalf("mkdir fonts: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, certificate.BoldFontFile), gobold.TTF, 0o644); err != nil {
		t.Fatalf("write bold font: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, certificate.RegularFontFile), goregular.TTF, 0o644); err != nil {
		t.Fatalf("write regular font: %v", err)
	}
	return dir
}

func TestLoadTemplate_MissingAssets(t *testing.T) {
	if _, err := certificate.LoadTemplate(t.TempDir()); !errors.Is(err, certificate.ErrTemplateMissing) {
		t.Errorf("empty dir: want ErrTemplateMissing, got %v", err)
	}

	// Fonts present but background absent still fails.
	dir := writeAssets(t)
	if err := os.Remove(filepath.Join(dir, certificate.BackgroundFile)); err != nil {
		t.Fatal(err)
	}
	if _, err := certificate.LoadTemplate(dir); !errors.Is(err, certificate.ErrTemplateMissing) {
		t.Errorf("missing background: want ErrTemplateMissing, got %v", err)
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	tpl, err := certificate.LoadTemplate(writeAssets(t))
	if err != nil {
		t.Fatalf("load template: %v", err)
	}

	pdf, err := certificate.Render(tpl, "Ravi Sharma", "Startup School")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
	if len(pdf) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(pdf))
	}
}

// TestRender_Deterministic renders the same certificate twice and expects
// identical bytes. Re-running a batch must reproduce prior output exactly.
func TestRender_Deterministic(t *testing.T) {
	tpl, err := certificate.LoadTemplate(writeAssets(t))
	if err != nil {
		t.Fatalf("load template: %v", err)
	}

	a, err := certificate.Render(tpl, "Ravi Sharma", "Startup School")
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	b, err := certificate.Render(tpl, "Ravi Sharma", "Startup School")
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("renders of identical inputs differ")
	}

	c, err := certificate.Render(tpl, "Asha Verma", "Startup School")
	if err != nil {
		t.Fatalf("third render: %v", err)
	}
	if bytes.Equal(a, c) {
		t.Errorf("different names produced identical documents")
	}
}

func TestRenderPoster(t *testing.T) {
	tpl, err := certificate.LoadFonts(writeAssets(t))
	if err != nil {
		t.Fatalf("load fonts: %v", err)
	}

	ev := models.Event{
		EventName:       "Startup School",
		EventDate:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Motive:          "Build your first venture",
		RegistrationFee: "Free",
	}
	out, err := certificate.RenderPoster(tpl, ev, "https://events.rtu.example/events/1", time.UTC)
	if err != nil {
		t.Fatalf("render poster: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("poster is not a PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 1080 || bounds.Dy() != 1350 {
		t.Errorf("poster size: want 1080x1350, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}
