package downloaders

import "errors"

var (
	ErrUnrecognized   = errors.New("unrecognized platform")
	ErrRedirect       = errors.New("redirect resolution failed")
	ErrCaptureTimeout = errors.New("media not captured")
	ErrAccessGated    = errors.New("playable stream not available")
	ErrTransfer       = errors.New("transfer failed")
	ErrRemux          = errors.New("remux failed")
)
