package dto

// Response is the uniform envelope every endpoint answers with.
// Business failures carry Status=false and a human-readable Message;
// the HTTP status code carries the machine-readable outcome.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
	Role    string `json:"role,omitempty"`
}

// OK builds a success envelope
func OK(message string) *Response {
	return &Response{Status: true, Message: message}
}

// Fail builds a failure envelope
func Fail(message string) *Response {
	return &Response{Status: false, Message: message}
}

// WithData attaches a payload to the envelope
func (r *Response) WithData(data any) *Response {
	r.Data = data
	return r
}

// WithToken attaches a bearer token to the envelope
func (r *Response) WithToken(token string) *Response {
	r.Token = token
	return r
}

// WithRole attaches the authenticated role to the envelope
func (r *Response) WithRole(role string) *Response {
	r.Role = role
	return r
}
