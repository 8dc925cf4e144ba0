package pdf

import "errors"

// ErrUnavailable is returned by Render when PDF support is compiled out.
var ErrUnavailable = errors.New("pdf rendering unavailable")
