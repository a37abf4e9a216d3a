package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// ResourceRequest is shared by create and update; quantity is unsigned
// so a negative value already fails at bind time.
type ResourceRequest struct {
	Name      string `json:"name"`
	Quantity  uint   `json:"quantity"`
	Available bool   `json:"available"`
}

func (req *ResourceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.By(notBlank)),
	)
}
