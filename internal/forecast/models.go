package forecast

import "time"

// NotAvailable is substituted for any temperature the feed leaves out.
const NotAvailable = "N/A"

// Temperature holds max/min in degrees Celsius as strings, NotAvailable when absent.
type Temperature struct {
	Max string `json:"max"`
	Min string `json:"min"`
}

// ChanceOfRain is the precipitation probability per quarter-day bucket,
// passed through as the feed formats it (e.g. "10%", "--%").
type ChanceOfRain struct {
	T00_06 string `json:"T00_06"`
	T06_12 string `json:"T06_12"`
	T12_18 string `json:"T12_18"`
	T18_24 string `json:"T18_24"`
}

// Image is the feed's icon reference for a forecast entry.
type Image struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Snapshot is the simplified view of one day's forecast.
type Snapshot struct {
	Date         string       `json:"date"`
	DateLabel    string       `json:"dateLabel"`
	Telop        string       `json:"telop"`
	Description  string       `json:"description,omitempty"` // today only
	Temperature  Temperature  `json:"temperature"`
	ChanceOfRain ChanceOfRain `json:"chanceOfRain"`
	Image        *Image       `json:"image,omitempty"`
}

// Report is the payload served by GET /weather.
type Report struct {
	Weather  Snapshot `json:"weather"`
	Tomorrow Snapshot `json:"tomorrow"`

	// LastMotionDetected is nil (JSON null) until the first motion post.
	LastMotionDetected *time.Time `json:"lastMotionDetected"`
}

// Upstream is the subset of the forecast feed this service reads.
type Upstream struct {
	Title       string              `json:"title"`
	PublicTime  string              `json:"publicTime"`
	Description UpstreamDescription `json:"description"`
	Forecasts   []UpstreamForecast  `json:"forecasts"`
	Location    UpstreamLocation    `json:"location"`
}

type UpstreamDescription struct {
	HeadlineText string `json:"headlineText"`
	BodyText     string `json:"bodyText"`
	Text         string `json:"text"`
}

type UpstreamLocation struct {
	Area       string `json:"area"`
	Prefecture string `json:"prefecture"`
	District   string `json:"district"`
	City       string `json:"city"`
}

// UpstreamForecast is one forecast entry of the feed.
type UpstreamForecast struct {
	Date         string              `json:"date"`
	DateLabel    string              `json:"dateLabel"`
	Telop        string              `json:"telop"`
	Temperature  UpstreamTemperature `json:"temperature"`
	ChanceOfRain ChanceOfRain        `json:"chanceOfRain"`
	Image        *Image              `json:"image"`
}

type UpstreamTemperature struct {
	Min *UpstreamReading `json:"min"`
	Max *UpstreamReading `json:"max"`
}

// UpstreamReading carries nullable values; the feed sends null for readings
// that are not forecast (typically today's minimum after morning).
type UpstreamReading struct {
	Celsius    *string `json:"celsius"`
	Fahrenheit *string `json:"fahrenheit"`
}
