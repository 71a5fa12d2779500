package event

// EventRequest is the fixed field list accepted on create and update
type EventRequest struct {
	Title            string `json:"title" binding:"required,max=200"`
	Description      string `json:"description" binding:"required,max=2000"`
	Date             string `json:"date" binding:"required,max=100"`
	Location         string `json:"location" binding:"required,max=200"`
	ImageURL         string `json:"image_url" binding:"required,max=500"`
	RegistrationLink string `json:"registration_link" binding:"max=500"`
}

type EventResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	Location         string `json:"location"`
	ImageURL         string `json:"image_url"`
	RegistrationLink string `json:"registration_link"`
}
