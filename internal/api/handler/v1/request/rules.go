package request

import (
	"fmt"
	"regexp"
	"strings"
)

const dateLayout = "2006-01-02"

// Leading +, 6 to 15 digit groups optionally separated by space,
// hyphen, parenthesis, slash or period, ending in a digit.
var phoneRegex = regexp.MustCompile(`^\+(?:[0-9\-().\/]\s?){6,15}[0-9]$`)

// notBlank rejects strings that are empty after trimming, which
// validation.Required alone lets through.
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("'%v' cannot be empty", s)
	}

	return nil
}
