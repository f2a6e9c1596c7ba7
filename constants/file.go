package constants

import "strings"

// AllowedExtensions holds the upload extensions the analyze endpoint accepts.
// PDF is accepted at the endpoint; the per-image prompt path assumes a raster
// image media type.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
	"pdf":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// FallbackMIMEType guesses a media type from an extension when the upload
// did not declare one.
func FallbackMIMEType(ext string) string {
	switch NormalizeExt(ext) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
