package prefs

import "errors"

var (
	// ErrOverlayDecode is returned when a stored overlay document cannot be
	// parsed against the settings schema.
	ErrOverlayDecode = errors.New("error decoding stored overlay")

	// ErrStorageUnavailable is returned when the durable preference store
	// cannot serve a request (missing table, lost connection).
	ErrStorageUnavailable = errors.New("preference storage unavailable")
)
