// Package apperr defines the error taxonomy shared by every component of
// the hub. Callers compare with errors.Is; none of these are fatal to an
// app's task except a broken mailbox, whose failure mode is a plain Go
// channel being closed.
package apperr

import "errors"

var (
	// ErrUnsupported means the device kind does not implement the
	// requested capability. Callers skip and continue.
	ErrUnsupported = errors.New("apperr: unsupported capability")

	// ErrOutOfBound means a caller passed an index at or beyond the grid,
	// or a vector longer than the device can address.
	ErrOutOfBound = errors.New("apperr: index or vector out of bound")

	// ErrDeviceNotFound means a named MIDI port could not be located
	// during the rediscovery loop.
	ErrDeviceNotFound = errors.New("apperr: device not found")

	// ErrPortInit means a MIDI port was found but failed to open.
	ErrPortInit = errors.New("apperr: port initialization failed")

	// ErrRead and ErrWrite wrap MIDI I/O failures. When listening on the
	// input port fails, the router drops the cycle and re-enumerates ports;
	// a failed write is logged and the cycle goes on.
	ErrRead  = errors.New("apperr: midi read failed")
	ErrWrite = errors.New("apperr: midi write failed")

	// ErrJPEGDecoding and ErrHTTPRequest wrap image-source failures; the
	// caller keeps whatever artwork it last rendered.
	ErrJPEGDecoding = errors.New("apperr: jpeg decoding failed")
	ErrHTTPRequest  = errors.New("apperr: http request failed")

	// ErrUnauthorized triggers exactly one token refresh retry in
	// spotify.withAccessToken before surfacing.
	ErrUnauthorized = errors.New("apperr: unauthorized")

	// ErrOther covers any other I/O failure; callers log and keep state.
	ErrOther = errors.New("apperr: other failure")

	// ErrFull and ErrEmpty report mailbox back-pressure and starvation.
	ErrFull  = errors.New("apperr: mailbox full")
	ErrEmpty = errors.New("apperr: mailbox empty")

	// ErrInvalidScaleForImage and ErrInvalidImage are raised by
	// imaging.Scale on malformed arguments.
	ErrInvalidScaleForImage = errors.New("apperr: invalid scale for image")
	ErrInvalidImage         = errors.New("apperr: invalid image")
)
