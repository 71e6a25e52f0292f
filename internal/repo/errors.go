package repo

import "errors"

// ErrFetchFailed marks any failure to produce the user list.
var ErrFetchFailed = errors.New("fetch failed")
