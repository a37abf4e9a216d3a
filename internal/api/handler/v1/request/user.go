package request

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type UpdateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Validate collects every violation rather than stopping at the first;
// the messages name the field and the received value.
func (req *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&req.Email, validation.Required,
			is.Email.Error(fmt.Sprintf("email='%v' is not in the valid format", req.Email))),
		validation.Field(&req.PhoneNumber, validation.Required,
			validation.Match(phoneRegex).Error(fmt.Sprintf("phoneNumber='%v' is not in the valid format", req.PhoneNumber))),
	)
}
