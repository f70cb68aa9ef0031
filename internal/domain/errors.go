package domain

import "errors"

// ErrEmptyPattern is returned when pattern text contains no recognized
// session tokens. The caller keeps the previous pattern and reverts any
// staged display text.
var ErrEmptyPattern = errors.New("pattern contains no recognized session types")
