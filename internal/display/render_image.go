package display

import (
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/i474232898/weather-motion-relay/internal/forecast"
)

const (
	imageWidth  = 800
	imageHeight = 480
	cardWidth   = 370
	cardHeight  = 280
	cardTop     = 60
)

// ImageRenderer draws the board as a PNG, e.g. for an e-ink frame.
type ImageRenderer struct {
	path     string
	fontPath string
}

// NewImageRenderer writes to path. Without fontPath the built-in
// 7x13 bitmap face is used, which only covers ASCII glyphs.
func NewImageRenderer(path, fontPath string) *ImageRenderer {
	return &ImageRenderer{path: path, fontPath: fontPath}
}

func (r *ImageRenderer) Render(v View) error {
	dc, err := r.draw(v)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(r.path); err != nil {
		return fmt.Errorf("save board image: %w", err)
	}
	return nil
}

func (r *ImageRenderer) draw(v View) (*gg.Context, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetHexColor("#ffffff")
	dc.DrawRectangle(0, 0, imageWidth, imageHeight)
	dc.Fill()

	if err := r.setFont(dc, 20); err != nil {
		return nil, err
	}

	switch {
	case v.Err != "":
		dc.SetHexColor("#dc2626")
		drawStringCentered(dc, v.Err, imageWidth/2, imageHeight/2)
		return dc, nil
	case !v.Ready():
		dc.SetHexColor("#000000")
		drawStringCentered(dc, MessageLoading, imageWidth/2, imageHeight/2)
		return dc, nil
	}

	dc.SetHexColor("#000000")
	drawStringCentered(dc, "Weather forecast", imageWidth/2, 20)

	if err := r.drawCard(dc, "Today", v.Today, 20); err != nil {
		return nil, err
	}
	if err := r.drawCard(dc, "Tomorrow", v.Tomorrow, 410); err != nil {
		return nil, err
	}

	if err := r.setFont(dc, 14); err != nil {
		return nil, err
	}
	dc.SetHexColor("#000000")
	dc.DrawStringWrapped(orDefault(v.Today.Description, MessageNoDetails),
		20, cardTop+cardHeight+20, 0, 0, imageWidth-40, 1.4, gg.AlignLeft)

	if v.LastMotion != nil {
		dc.SetHexColor("#4b5563")
		drawStringCentered(dc,
			"Last motion detected: "+v.LastMotion.Local().Format("2006-01-02 15:04:05"),
			imageWidth/2, imageHeight-30)
	}
	return dc, nil
}

func (r *ImageRenderer) drawCard(dc *gg.Context, title string, s *forecast.Snapshot, left float64) error {
	dc.SetHexColor("#f3f4f6")
	dc.DrawRoundedRectangle(left, cardTop, cardWidth, cardHeight, 12)
	dc.Fill()

	top := float64(cardTop) + 15
	dc.SetHexColor("#000000")

	if err := r.setFont(dc, 22); err != nil {
		return err
	}
	drawStringLeft(dc, title, left+15, top)

	if err := r.setFont(dc, 16); err != nil {
		return err
	}
	lines := []string{
		orDefault(s.Telop, MessageNoInfo),
		fmt.Sprintf("%s (%s)", s.Date, s.DateLabel),
		"High: " + orDefault(s.Temperature.Max, forecast.NotAvailable) + " C",
		"Low:  " + orDefault(s.Temperature.Min, forecast.NotAvailable) + " C",
		"Chance of rain",
		fmt.Sprintf("00-06 %s   06-12 %s",
			orDefault(s.ChanceOfRain.T00_06, forecast.NotAvailable),
			orDefault(s.ChanceOfRain.T06_12, forecast.NotAvailable)),
		fmt.Sprintf("12-18 %s   18-24 %s",
			orDefault(s.ChanceOfRain.T12_18, forecast.NotAvailable),
			orDefault(s.ChanceOfRain.T18_24, forecast.NotAvailable)),
	}

	top += 40
	for _, line := range lines {
		drawStringLeft(dc, line, left+15, top)
		top += 28
	}
	return nil
}

func (r *ImageRenderer) setFont(dc *gg.Context, points float64) error {
	if r.fontPath == "" {
		dc.SetFontFace(basicfont.Face7x13)
		return nil
	}
	if err := dc.LoadFontFace(r.fontPath, points); err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	return nil
}

func drawStringCentered(dc *gg.Context, text string, x, y float64) {
	w, h := dc.MeasureString(text)
	dc.DrawString(text, x-w/2, y+h)
}

func drawStringLeft(dc *gg.Context, text string, x, y float64) {
	_, h := dc.MeasureString(text)
	dc.DrawString(text, x, y+h)
}
