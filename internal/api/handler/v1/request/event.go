package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date" format:"YYYY-MM-DD"`
	Location    string `json:"location"`
}

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.By(notBlank)),
		validation.Field(&req.Description, validation.Required, validation.By(notBlank)),
		validation.Field(&req.Date, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.Location, validation.Required, validation.By(notBlank)),
	)
}
