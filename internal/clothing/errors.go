package clothing

import "errors"

// ErrValidation indicates a request with missing or non-numeric fields.
var ErrValidation = errors.New("invalid data types provided")
