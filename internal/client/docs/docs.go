// Package docs turns user-supplied files into the inline data URLs stored on
// users and posts.
package docs

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// MaxFileSize caps a single attached document.
const MaxFileSize = 8 << 20

// DataURL reads the file at path and returns it as
// "data:<mime>;base64,<payload>". An empty path means "no file" and yields "".
func DataURL(ctx context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	st, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if st.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if st.Size() > MaxFileSize {
		return "", fmt.Errorf("%s is %s, larger than the %s limit", path,
			humanize.IBytes(uint64(st.Size())), humanize.IBytes(MaxFileSize))
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Encode(filepath.Base(path), b), nil
}

// Encode builds a data URL from raw bytes, sniffing the media type.
func Encode(name string, b []byte) string {
	mime := http.DetectContentType(b)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if mime == "application/octet-stream" && strings.EqualFold(filepath.Ext(name), ".pdf") {
		mime = "application/pdf"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b)
}

// IsImage reports whether a data URL carries an image.
func IsImage(dataURL string) bool {
	return strings.HasPrefix(dataURL, "data:image/")
}
