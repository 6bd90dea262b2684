package certificate

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
)

// Asset filenames looked up under the assets directory.
const (
	BackgroundFile  = "certificate-template.png"
	BoldFontFile    = "fonts/Inter-Bold.ttf"
	RegularFontFile = "fonts/Inter-Regular.ttf"
)

var ErrTemplateMissing = errors.New("template asset missing")

// Template bundles the visual assets shared by every certificate in a batch.
// It is never mutated by rendering.
type Template struct {
	background image.Image
	bold       *truetype.Font
	regular    *truetype.Font
}

// LoadTemplate reads and validates the template assets. Callers load once,
// before iterating registrants, so a broken asset aborts a batch up front.
func LoadTemplate(dir string) (*Template, error) {
	bg, err := loadImage(filepath.Join(dir, BackgroundFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateMissing, BackgroundFile, err)
	}
	bold, err := loadFont(filepath.Join(dir, BoldFontFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateMissing, BoldFontFile, err)
	}
	regular, err := loadFont(filepath.Join(dir, RegularFontFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateMissing, RegularFontFile, err)
	}
	return &Template{background: bg, bold: bold, regular: regular}, nil
}

// LoadFonts loads only the font assets, for renderings that need no
// background (the event poster).
func LoadFonts(dir string) (*Template, error) {
	bold, err := loadFont(filepath.Join(dir, BoldFontFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateMissing, BoldFontFile, err)
	}
	regular, err := loadFont(filepath.Join(dir, RegularFontFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateMissing, RegularFontFile, err)
	}
	return &Template{bold: bold, regular: regular}, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func loadFont(path string) (*truetype.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(b)
}
