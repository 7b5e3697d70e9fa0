package attachment

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxSize is the attachment payload ceiling. Attachments are embedded in
// the locally persisted event, so the limit keeps store writes cheap.
const MaxSize = 2 * 1024 * 1024

var ErrTooLarge = errors.New("attachment exceeds the 2 MiB limit")

// Attachment is the embeddable representation of a user-selected file:
// a data URL that renders inline as an image or a PDF view, plus the
// original file name.
type Attachment struct {
	FileName string
	DataURL  string
}

// Encode reads the payload, rejects anything over MaxSize and produces
// the embeddable data URL. It has no side effects; the caller decides
// whether to merge the result into a draft event.
func Encode(name string, r io.Reader) (Attachment, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return Attachment{}, fmt.Errorf("read attachment: %w", err)
	}
	if len(data) > MaxSize {
		return Attachment{}, ErrTooLarge
	}

	return Attachment{
		FileName: name,
		DataURL:  fmt.Sprintf("data:%s;base64,%s", detectMIME(name, data), base64.StdEncoding.EncodeToString(data)),
	}, nil
}

// detectMIME sniffs the content, trusting the .pdf extension when the
// sniffer reports a generic type.
func detectMIME(name string, data []byte) string {
	mime := http.DetectContentType(data)
	if strings.EqualFold(filepath.Ext(name), ".pdf") || strings.HasPrefix(string(data), "%PDF-") {
		return "application/pdf"
	}
	return mime
}

// IsPDF reports whether a data URL holds a PDF payload.
func IsPDF(dataURL string) bool {
	return strings.HasPrefix(dataURL, "data:application/pdf")
}
