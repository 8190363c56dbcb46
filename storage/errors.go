package storage

import "errors"

// errSaveFailed is returned by the Memory backend when configured to
// simulate persistence failure.
var errSaveFailed = errors.New("storage: save failed")
