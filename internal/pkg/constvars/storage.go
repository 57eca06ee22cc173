package constvars

const (
	UploadURLPrefix = "/uploads"

	UploadFolderHealthCampaigns = "health_campaigns"
	UploadFolderHospitalImages  = "images"
	UploadFolderHospitalLicense = "licenses"
	UploadFolderVaccines        = "vaccines"
)

const (
	FormFileImage   = "image"
	FormFileLicense = "license"
)

var (
	AllowedImageExtensions   = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	AllowedLicenseExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".pdf"}
)

const (
	RedisKeyHospitalPrefix = "hospital:"
)
