package registry

import "errors"

// ErrActivityNotFound is returned when an activity name is not in the registry.
var ErrActivityNotFound = errors.New("activity not found")

// ErrAlreadyRegistered is returned when signing up an email that is already a
// participant of the activity.
var ErrAlreadyRegistered = errors.New("student already signed up")

// ErrNotRegistered is returned when unregistering an email that is not a
// participant of the activity.
var ErrNotRegistered = errors.New("student is not registered for this activity")
