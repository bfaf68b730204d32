package inventory

import "github.com/cockroachdb/errors"

// Domain errors for dataset operations.
var (
	// ErrInvalidItem marks every validation failure returned by Validate.
	ErrInvalidItem = errors.New("inventory: invalid item")

	// ErrIndexOutOfRange indicates a delete past either end of the dataset.
	ErrIndexOutOfRange = errors.New("inventory: index out of range")

	// ErrUnknownField indicates a field name that is not one of the four item fields.
	ErrUnknownField = errors.New("inventory: unknown field")

	// ErrUnknownPreset indicates a dataset preset that does not exist.
	ErrUnknownPreset = errors.New("inventory: unknown preset")
)

// FieldError describes which item attribute failed validation.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return string(e.Field) + ": " + e.Message
}
