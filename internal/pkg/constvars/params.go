package constvars

const (
	URLParamHospitalID = "id"
)

const (
	DateLayoutYYYYMMDD = "2006-01-02"
)
