package dto

// Response is the uniform envelope returned by every endpoint.
// Data is null on failure and on delete.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func Success(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Failure(message string) Response {
	return Response{Success: false, Message: message}
}
