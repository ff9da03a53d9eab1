package summarizer

// Style selects the instruction template sent with the transcript.
type Style string

const (
	StyleConcise  Style = "concise"
	StyleDetailed Style = "detailed"
	StyleBullet   Style = "bullet"
	StyleComplete Style = "complete"
)

// Config configures the summarizer.
type Config struct {
	DefaultStyle Style
	Temperature  float32
}

// Request represents the incoming summarization payload.
type Request struct {
	VideoID string `json:"video_id"`
	Style   Style  `json:"style,omitempty"`
}

// Response is returned on success.
type Response struct {
	Summary string `json:"summary"`
}
