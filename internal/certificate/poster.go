package certificate

import (
	"bytes"
	"image/png"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/rtuclub/eventdesk/internal/models"
)

const (
	posterWidth  = 1080
	posterHeight = 1350

	posterVenue    = "RTU Campus, Kota"
	posterSubtitle = "RAJASTHAN TECHNICAL UNIVERSITY, KOTA"
)

// RenderPoster draws the promotional poster for an event: dark canvas, event
// title and motive, date and venue, and a QR code pointing at the
// registration URL. Returns PNG bytes.
func RenderPoster(tpl *Template, ev models.Event, registrationURL string, loc *time.Location) ([]byte, error) {
	qrPNG, err := qrcode.Encode(registrationURL, qrcode.Medium, 300)
	if err != nil {
		return nil, err
	}
	qrImg, err := png.Decode(bytes.NewReader(qrPNG))
	if err != nil {
		return nil, err
	}

	if loc == nil {
		loc = time.Local
	}

	dc := gg.NewContext(posterWidth, posterHeight)
	dc.SetRGB255(17, 24, 39)
	dc.Clear()

	center := float64(posterWidth) / 2

	dc.SetFontFace(truetype.NewFace(tpl.regular, &truetype.Options{Size: 30}))
	dc.SetRGB255(0x60, 0xa5, 0xfa)
	dc.DrawStringAnchored(posterSubtitle, center, 280, 0.5, 0)

	dc.SetFontFace(truetype.NewFace(tpl.bold, &truetype.Options{Size: 100}))
	dc.SetRGB255(0xff, 0xff, 0xff)
	dc.DrawStringAnchored(ev.EventName, center, 420, 0.5, 0)

	dc.SetFontFace(truetype.NewFace(tpl.regular, &truetype.Options{Size: 40}))
	dc.SetRGB255(0xd1, 0xd5, 0xdb)
	dc.DrawStringAnchored(ev.Motive, center, 520, 0.5, 0)

	dc.SetFontFace(truetype.NewFace(tpl.regular, &truetype.Options{Size: 32}))
	dc.SetRGB255(0xe5, 0xe7, 0xeb)
	dc.DrawStringAnchored(ev.EventDate.In(loc).Format("Monday, January 2, 2006"), center, 620, 0.5, 0)
	dc.DrawStringAnchored(posterVenue, center, 670, 0.5, 0)
	if ev.RegistrationFee != "" {
		dc.DrawStringAnchored("Fee: "+ev.RegistrationFee, center, 720, 0.5, 0)
	}

	dc.DrawStringAnchored("Scan to Register", center, 880, 0.5, 0)
	dc.DrawImage(qrImg, (posterWidth-300)/2, 920)

	var out bytes.Buffer
	if err := png.Encode(&out, dc.Image()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
