package skipmap

import "errors"

// ErrDuplicateKey is returned by Insert when the key is already
// present. The list is left unchanged; the caller decides whether to
// retry with a different key or abort.
var ErrDuplicateKey = errors.New("skipmap: duplicate key")
