package pubchem

import "fmt"

// RequestError is a transport-level failure: the request could not be built
// or sent, timed out, or came back with a non-2xx status. Status is zero
// when no response was received.
type RequestError struct {
	URL    string
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError is a response the service answered but whose body did not
// match the expected shape (malformed JSON, missing or empty fields).
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
