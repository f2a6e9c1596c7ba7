package vision

import "context"

// EncodedImage is the transport-safe inline form of an uploaded page:
// base64 payload plus its declared media type.
type EncodedImage struct {
	Data     string `json:"data"`
	MIMEType string `json:"mimeType"`
}

// ContentGenerator is the single capability we assume of the external vision
// model: generate free-form text from (prompt, inline image). No streaming,
// no structured-output mode.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, img EncodedImage) (string, error)
}
