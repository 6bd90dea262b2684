package certificate

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"time"

	"github.com/fogleman/gg"
	"github.com/go-pdf/fpdf"
	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
)

// Certificate page geometry, in pixels and PDF points (1:1).
const (
	pageWidth  = 1200
	pageHeight = 800
)

// pdfEpoch pins the PDF metadata dates so identical inputs produce
// byte-identical documents.
var pdfEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Render composes a certificate for one registrant and returns it as a
// single-page PDF: the scaled background with the name and congratulatory
// lines drawn over it, embedded as the page's sole content. Output is
// deterministic for identical inputs.
func Render(tpl *Template, name, eventName string) ([]byte, error) {
	img := composite(tpl, name, eventName)

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return nil, err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.AddPage()
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("certificate", opts, &pngBuf)
	pdf.ImageOptions("certificate", 0, 0, pageWidth, pageHeight, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func composite(tpl *Template, name, eventName string) image.Image {
	// Scale into a fresh canvas; the template image itself is left intact.
	canvas := image.NewRGBA(image.Rect(0, 0, pageWidth, pageHeight))
	xdraw.ApproxBiLinear.Scale(canvas, canvas.Bounds(), tpl.background, tpl.background.Bounds(), xdraw.Src, nil)

	dc := gg.NewContextForRGBA(canvas)

	dc.SetFontFace(truetype.NewFace(tpl.bold, &truetype.Options{Size: 52}))
	dc.SetColor(color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff})
	dc.DrawStringAnchored(name, pageWidth/2, 420, 0.5, 0)

	dc.SetFontFace(truetype.NewFace(tpl.regular, &truetype.Options{Size: 24}))
	dc.SetColor(color.RGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xff})
	dc.DrawStringAnchored("for successfully participating in the event", pageWidth/2, 510, 0.5, 0)
	dc.DrawStringAnchored(eventName, pageWidth/2, 550, 0.5, 0)

	return dc.Image()
}
