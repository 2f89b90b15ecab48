//go:build headless

package window

import "errors"

// ErrHeadless is returned when a window is requested from a binary built with the headless tag.
var ErrHeadless = errors.New("window support not compiled in (built with -tags headless)")

func newPlatformWindow(w *engineWindow) error {
	return ErrHeadless
}

func platformIsRunningCheck(w *engineWindow) bool {
	return false
}

func platformCloseWindow(w *engineWindow) error {
	return ErrHeadless
}

func platformProcessMessages(w *engineWindow) bool {
	return false
}
