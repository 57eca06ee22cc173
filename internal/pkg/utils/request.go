package utils

import (
	"errors"
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// DecodeJSONBody reads the whole body before decoding so a read failure, such
// as hitting the body limit, is returned as is instead of as a syntax error.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

// FormUpload returns the file sent under field, or nil when the field is absent.
func FormUpload(r *http.Request, field string) (*requests.Upload, error) {
	file, fileHeader, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return &requests.Upload{File: file, Header: fileHeader}, nil
}

func CloseUploads(uploads ...*requests.Upload) {
	for _, upload := range uploads {
		if upload != nil && upload.File != nil {
			upload.File.Close()
		}
	}
}

func FormString(r *http.Request, field string) string {
	return strings.TrimSpace(r.FormValue(field))
}

// FormInt parses an optional integer form value, an empty value yields 0.
func FormInt(r *http.Request, field string) (int, error) {
	value := FormString(r, field)
	if value == "" {
		return 0, nil
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", field, err)
	}
	return result, nil
}

// FormJSON decodes an optional JSON encoded form value into dst.
func FormJSON(r *http.Request, field string, dst interface{}) error {
	value := FormString(r, field)
	if value == "" {
		return nil
	}
	return json.Unmarshal([]byte(value), dst)
}

// ParseDate accepts either a plain calendar date or an RFC3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(constvars.DateLayoutYYYYMMDD, value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}
