package vision

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/dentistnoor/DentistFriend-V2-sub000/constants"
)

// EncodeImage converts raw upload bytes into the inline representation the
// model API expects.
func EncodeImage(data []byte, mimeType string) EncodedImage {
	return EncodedImage{
		Data:     base64.StdEncoding.EncodeToString(data),
		MIMEType: mimeType,
	}
}

// EncodeMultipartFile reads one multipart part and encodes it. Read errors
// propagate to the caller, which treats them as a per-file failure.
func EncodeMultipartFile(fh *multipart.FileHeader) (EncodedImage, error) {
	f, err := fh.Open()
	if err != nil {
		return EncodedImage{}, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return EncodedImage{}, fmt.Errorf("read upload %q: %w", fh.Filename, err)
	}

	mt := strings.TrimSpace(fh.Header.Get("Content-Type"))
	if mt == "" || mt == "application/octet-stream" {
		mt = constants.FallbackMIMEType(filepath.Ext(fh.Filename))
	}
	return EncodeImage(data, mt), nil
}
