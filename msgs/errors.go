package msgs

import "errors"

// errors
var (
	// ERR_INVALID_FRAME is returned whenever a frame cannot be faithfully
	// converted in either direction: a standard identifier on decode, an
	// identifier outside the catalog, a payload shorter than the matched
	// message requires, or the frame constructor refusing the
	// identifier/payload pair on encode. Failures wrap this sentinel with a
	// detail message; match with errors.Is.
	ERR_INVALID_FRAME = errors.New("invalid frame")
)
