package memories

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeDataURL wraps image bytes into a self-contained data URL, the wire
// form used between the upload page, the local queue, and the gallery.
func EncodeDataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL splits a data URL back into content type and bytes. Only the
// base64 form is supported (the only form this system produces).
func DecodeDataURL(dataURL string) (contentType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL: no payload")
	}
	contentType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("unsupported data URL encoding (want base64)")
	}
	if contentType == "" {
		contentType = "text/plain"
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URL payload: %w", err)
	}
	return contentType, data, nil
}
