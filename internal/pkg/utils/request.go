package utils

import (
	"intake-report-service/internal/pkg/exceptions"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// DecodeJSONBody reads and unmarshals a JSON request body into dst.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return exceptions.ErrCannotReadRequestBody(err)
	}
	defer r.Body.Close()

	if err := json.Unmarshal(body, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
