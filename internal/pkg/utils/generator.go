package utils

import (
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateUploadFileName keeps the millisecond timestamp naming used by the web
// client and adds a short random suffix so two uploads in the same millisecond
// do not overwrite each other.
func GenerateUploadFileName(originalName string) string {
	extension := strings.ToLower(filepath.Ext(originalName))
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, extension)
}
