package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateUpload checks the extension and size of an uploaded file. A nil
// header means the field was not sent and is always valid.
func ValidateUpload(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64, allowedExtensions []string) error {
	if fileHeader == nil {
		return nil
	}

	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return errors.New("file size exceeds the maximum limit")
	}

	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !slices.Contains(allowedExtensions, extension) {
		return errors.New("invalid file format")
	}
	return nil
}
