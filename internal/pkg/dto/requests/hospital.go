package requests

type RegisterHospital struct {
	Name        string                   `json:"name" validate:"required"`
	Location    string                   `json:"location"`
	Phone       string                   `json:"phone"`
	Email       string                   `json:"email" validate:"omitempty,email"`
	RegNo       string                   `json:"regNo"`
	GovtID      string                   `json:"govtID"`
	Website     string                   `json:"website"`
	Owner       string                   `json:"owner"`
	OpeningTime string                   `json:"opening"`
	ClosingTime string                   `json:"closing"`
	Doctors     []map[string]interface{} `json:"doctors"`
	Image       *Upload                  `json:"-"`
	License     *Upload                  `json:"-"`
}
