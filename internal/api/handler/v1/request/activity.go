package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateActivityRequest struct {
	PlotID      string `json:"plotId"`
	Description string `json:"description"`
	Date        string `json:"date" format:"YYYY-MM-DD"`
}

func (req *CreateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PlotID, validation.Required, is.UUIDv4),
		validation.Field(&req.Description, validation.Required, validation.By(notBlank)),
		validation.Field(&req.Date, validation.Required, validation.Date(dateLayout)),
	)
}

type UpdateActivityRequest struct {
	Description string `json:"description"`
	Date        string `json:"date" format:"YYYY-MM-DD"`
}

func (req *UpdateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Description, validation.Required, validation.By(notBlank)),
		validation.Field(&req.Date, validation.Required, validation.Date(dateLayout)),
	)
}
