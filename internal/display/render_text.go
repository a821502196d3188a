package display

import (
	"io"
	"text/template"
	"time"

	"github.com/i474232898/weather-motion-relay/internal/forecast"
)

const boardTemplate = `
{{- define "card" -}}
== {{.Title}} ==
{{orNoInfo .S.Telop}}
{{.S.Date}} ({{.S.DateLabel}})
High: {{orNA .S.Temperature.Max}}°C   Low: {{orNA .S.Temperature.Min}}°C
Chance of rain:
  00-06 {{orNA .S.ChanceOfRain.T00_06}}  06-12 {{orNA .S.ChanceOfRain.T06_12}}  12-18 {{orNA .S.ChanceOfRain.T12_18}}  18-24 {{orNA .S.ChanceOfRain.T18_24}}
{{with .S.Image}}Icon: {{or .Title "weather icon"}} <{{.URL}}>
{{end -}}
{{- end -}}

{{- if .Err -}}
{{.Err}}
{{else if not .Ready -}}
{{loading}}
{{else -}}
Weather forecast

{{template "card" (card "Today" .Today)}}
{{template "card" (card "Tomorrow" .Tomorrow)}}
== Details ==
{{or .Today.Description noDetails}}
{{with .LastMotion}}
Last motion detected: {{localTime .}}
{{end -}}
{{end -}}
`

type cardData struct {
	Title string
	S     *forecast.Snapshot
}

var boardTmpl = template.Must(template.New("board").Funcs(template.FuncMap{
	"card":      func(title string, s *forecast.Snapshot) cardData { return cardData{Title: title, S: s} },
	"orNA":      func(s string) string { return orDefault(s, forecast.NotAvailable) },
	"orNoInfo":  func(s string) string { return orDefault(s, MessageNoInfo) },
	"loading":   func() string { return MessageLoading },
	"noDetails": func() string { return MessageNoDetails },
	"localTime": func(t *time.Time) string { return t.Local().Format("2006-01-02 15:04:05") },
}).Parse(boardTemplate))

// TextRenderer writes the board as plain text.
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) Render(v View) error {
	return boardTmpl.Execute(r.w, v)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
