package app

import "errors"

// ErrQuit signals a user-requested exit from the main loop. It is not a
// failure; callers check for it with errors.Is and exit cleanly.
var ErrQuit = errors.New("quit requested")
