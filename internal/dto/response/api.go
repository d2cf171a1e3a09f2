package response

import (
	"time"
)

// Envelope is the JSON body of every reply. Message carries the sentence
// the dashboards show to admins, drivers and citizens, so failures always
// set it; Data is the bin, complaint, work entry or account involved.
type Envelope[T any] struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Data      T         `json:"data,omitempty"`
	Errors    any       `json:"errors,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func envelope[T any](ok bool, message string, data T) Envelope[T] {
	return Envelope[T]{Success: ok, Message: message, Data: data, Timestamp: time.Now().UTC()}
}

// OK reports a completed write, e.g. "Bin updated successfully."
func OK[T any](data T, message string) Envelope[T] {
	return envelope(true, message, data)
}

// WithData answers a read without a message.
func WithData[T any](data T) Envelope[T] {
	return envelope(true, "", data)
}

// Failure carries the message of a rejected request.
func Failure[T any](message string) Envelope[T] {
	var zero T
	return envelope(false, message, zero)
}

// Invalid is a Failure for a body that could not be bound; details holds
// the binding error.
func Invalid[T any](message string, details any) Envelope[T] {
	e := Failure[T](message)
	e.Errors = details
	return e
}
