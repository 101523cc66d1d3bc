package apiutil

// Response is the uniform success envelope returned by every endpoint.
// The dashboard always inspects statusCode/data/message/success, so the
// field set and casing must not change.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// NewResponse builds a success envelope. Success is derived from the status
// code, mirroring the error envelope's success:false for >=400.
func NewResponse(statusCode int, data interface{}, message string) *Response {
	if message == "" {
		message = "Success"
	}
	return &Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}
