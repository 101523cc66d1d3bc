package apiutil

// FieldError carries structured validation detail for a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application error carried from handlers to the global error
// handler, which serializes it into the error envelope.
type Error struct {
	StatusCode int          `json:"statusCode"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
	Stack      string       `json:"stack,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds an application error with an empty detail list.
func NewError(statusCode int, message string) *Error {
	if message == "" {
		message = "something went wrong"
	}
	return &Error{
		StatusCode: statusCode,
		Message:    message,
	}
}

// WithErrors attaches structured field errors.
func (e *Error) WithErrors(errors []FieldError) *Error {
	e.Errors = errors
	return e
}

// ErrorEnvelope is the JSON shape written for failed requests.
type ErrorEnvelope struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	StatusCode int          `json:"statusCode"`
	Errors     []FieldError `json:"errors,omitempty"`
	Stack      string       `json:"stack,omitempty"`
}

// Envelope converts the error into its response shape. The stack is included
// only when requested (development mode).
func (e *Error) Envelope(includeStack bool) *ErrorEnvelope {
	env := &ErrorEnvelope{
		Success:    false,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Errors:     e.Errors,
	}
	if includeStack {
		env.Stack = e.Stack
	}
	return env
}
