package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hireline/hireline/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeStrict parses an engine response into v and enforces the schema
// contract from our side: unknown fields and out-of-range values are
// rejected outright, never repaired. Any nonconformance maps to
// domain.ErrSchemaInvalid.
func decodeStrict(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode: %v", domain.ErrSchemaInvalid, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: validate: %v", domain.ErrSchemaInvalid, err)
	}
	return nil
}
