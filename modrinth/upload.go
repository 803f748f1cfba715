package modrinth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// filePart names one file of a multipart upload.
type filePart struct {
	field string
	path  string
}

// multipartPayload assembles a multipart body carrying a JSON "data" field
// followed by the given files. The body is buffered so the transport can
// replay it across retry attempts; source files are opened only for the
// duration of this call and closed on every exit path.
func multipartPayload(data any, files []filePart) ([]byte, string, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode payload: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("data", string(encoded)); err != nil {
		return nil, "", fmt.Errorf("failed to write payload field: %w", err)
	}

	for _, file := range files {
		if err := appendFile(w, file); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize upload body: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func appendFile(w *multipart.Writer, file filePart) error {
	f, err := os.Open(file.path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file.path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(file.field, filepath.Base(file.path))
	if err != nil {
		return fmt.Errorf("failed to create form file %s: %w", file.field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", file.path, err)
	}
	return nil
}
