package email

import (
	"errors"
	"fmt"
)

// ErrRender indicates a template was called without identity-critical data.
var ErrRender = errors.New("failed to render email")

// RenderError names the template and the missing field. It signals an
// integration bug, not bad user input.
type RenderError struct {
	Template string
	Field    string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %s is missing", e.Template, e.Field)
}

func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}

// requireFields returns a RenderError for the first empty value in fields.
func requireFields(template string, fields ...[2]string) error {
	for _, f := range fields {
		if f[1] == "" {
			return &RenderError{Template: template, Field: f[0]}
		}
	}
	return nil
}
