package vision

import (
	"encoding/base64"
	"testing"
)

func TestEncodeImage(t *testing.T) {
	img := EncodeImage([]byte("hello"), "image/jpeg")
	if img.MIMEType != "image/jpeg" {
		t.Errorf("mime = %q", img.MIMEType)
	}
	decoded, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		t.Fatalf("data is not valid base64: %v", err)
	}
	if string(decoded) != "hello" {
		t.Errorf("decoded = %q", decoded)
	}
}
