package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"tigertrade/internal/validation"
)

// MsgInvalidBody is returned when the request body is not the expected JSON object.
const MsgInvalidBody = "invalid request body"

// decodeStrict decodes a single JSON object into v, rejecting unknown fields
// and trailing data.
func decodeStrict(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

// validationMessage returns the client-safe message of a validation failure.
func validationMessage(err error) string {
	if ve, ok := validation.AsValidationError(err); ok {
		return ve.Message
	}
	return MsgInvalidBody
}
