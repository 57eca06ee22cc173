package requests

type CreateHealthCampaign struct {
	Title            string  `json:"title" validate:"required"`
	Description      string  `json:"description"`
	Date             string  `json:"date"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	Organizer        string  `json:"organizer"`
	OrganizerContact string  `json:"organizerContact"`
	Attendees        int     `json:"attendees" validate:"gte=0"`
	Address          string  `json:"address"`
	Image            *Upload `json:"-"`
}
