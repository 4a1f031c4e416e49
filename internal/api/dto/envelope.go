package dto

// Envelope is the uniform response wrapper: {success, data, message}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps a successful payload.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail wraps an error message.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
