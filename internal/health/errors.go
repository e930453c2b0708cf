package health

import "strings"

// MsgNoMetrics is reported when a log carries no usable content
const MsgNoMetrics = "At least one health metric must be provided"

// ValidationError is returned by Normalize when an observation cannot
// become a sample. Messages are meant to be shown to the user.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Messages, "; ")
}
