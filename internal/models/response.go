package models

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type Meta struct {
	Count  int64 `json:"count"`
	Unread int64 `json:"unread,omitempty"`
}

// Başarılı response için helper
func SuccessResponse(data any, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Liste dönen endpoint'ler için toplam sayı ile birlikte
func ListResponse(data any, count int64, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    &Meta{Count: count},
	}
}

// Hata response'u için helper
func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}
