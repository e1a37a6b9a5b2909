package dto

// APIResponse is the standard response envelope: {success, message/error, ...payload}
type APIResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// NewSuccessResponse creates a success envelope with a human-readable message
func NewSuccessResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// NewDataResponse creates a success envelope carrying a payload
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}
