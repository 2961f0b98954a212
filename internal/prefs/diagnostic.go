package prefs

import "fmt"

// Diagnostic reports a non-fatal persistence failure for one setting. It is
// returned by value-setting operations instead of an error so a write fault
// can be shown to the user without aborting the request.
type Diagnostic struct {
	// Path is the setting the write was for.
	Path string

	// Err is the underlying failure.
	Err error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("failed to persist %q: %v", d.Path, d.Err)
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}
