package site

import "errors"

// ErrUnknownVariant is returned by ParseVariant for names outside the variant set.
var ErrUnknownVariant = errors.New("unknown variant")
