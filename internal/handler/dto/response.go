package dto

// Response — единый конверт всех ответов API.
// Успех несет data, ошибка — message или список errors (для валидации).
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// NewSuccessResponse оборачивает полезную нагрузку в конверт успеха
func NewSuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// NewMessageResponse возвращает успешный ответ с текстовым сообщением без данных
func NewMessageResponse(message string) Response {
	return Response{Success: true, Message: message}
}

// NewErrorResponse возвращает ответ с одним сообщением об ошибке
func NewErrorResponse(message string) Response {
	return Response{Success: false, Message: message}
}

// NewValidationErrorResponse возвращает ответ с полным списком нарушений валидации
func NewValidationErrorResponse(errors []string) Response {
	return Response{Success: false, Errors: errors}
}
