package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreatePlotRequest struct {
	UserID        string `json:"userId"`
	Size          string `json:"size"`
	Location      string `json:"location"`
	ReservedUntil string `json:"reservedUntil" format:"YYYY-MM-DD"`
}

func (req *CreatePlotRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required, is.UUIDv4),
		validation.Field(&req.Size, validation.Required, validation.By(notBlank)),
		validation.Field(&req.Location, validation.Required, validation.By(notBlank)),
		validation.Field(&req.ReservedUntil, validation.Required, validation.Date(dateLayout)),
	)
}

type UpdatePlotRequest struct {
	Size          string `json:"size"`
	Location      string `json:"location"`
	ReservedUntil string `json:"reservedUntil" format:"YYYY-MM-DD"`
}

func (req *UpdatePlotRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Size, validation.Required, validation.By(notBlank)),
		validation.Field(&req.Location, validation.Required, validation.By(notBlank)),
		validation.Field(&req.ReservedUntil, validation.Required, validation.Date(dateLayout)),
	)
}
