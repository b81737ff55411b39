package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/msomdec/exercise-tracker/internal/domain"
)

// maxBodyBytes caps request bodies; the API only takes a handful of short fields.
const maxBodyBytes = 1 << 16

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// readFields reads the request body as flat string fields. JSON objects
// and URL-encoded forms are both accepted; JSON numbers keep their
// literal text so "30" and 30 parse the same way downstream.
func readFields(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return readJSONFields(r.Body)
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	fields := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		fields[key] = r.PostForm.Get(key)
	}
	return fields, nil
}

func readJSONFields(body io.Reader) (map[string]string, error) {
	var raw map[string]any
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: malformed JSON body: %v", domain.ErrInvalidInput, err)
	}

	fields := make(map[string]string, len(raw))
	for key, v := range raw {
		switch v := v.(type) {
		case nil:
		case string:
			fields[key] = v
		case json.Number:
			fields[key] = v.String()
		default:
			return nil, fmt.Errorf("%w: field %q must be a string or number", domain.ErrInvalidInput, key)
		}
	}
	return fields, nil
}
