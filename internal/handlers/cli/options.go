package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Listing formats accepted by --output.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// Options holds the parsed command-line flags.
type Options struct {
	// ConfigPath is empty unless --pyproject-toml was given.
	ConfigPath string `flag:"pyproject-toml"`
	Output     string `flag:"output" validate:"oneof=text table yaml"`
	Shell      string `flag:"shell" validate:"required"`
	Verbose    bool   `flag:"verbose"`
}

// Validate checks the flag values for basic semantic errors.
func (o Options) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("flag")
	})

	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("invalid value %q for --%s: must be one of %s",
				fe.Value(), fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "required":
			msgs = append(msgs, fmt.Sprintf("--%s must not be empty", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("invalid value %q for --%s", fe.Value(), fe.Field()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
