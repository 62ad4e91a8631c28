// File: internal/dto/response.go
package dto

// Response 全域回應信封，所有端點成功與失敗皆使用
// swagger:model dto.Response
type Response struct {
	// 請求是否成功
	Success bool `json:"success" example:"true"`

	// 清單回應的筆數
	Count *int `json:"count,omitempty" example:"2"`

	// 回應資料
	Data interface{} `json:"data,omitempty"`

	// 人類可讀訊息
	Message string `json:"message,omitempty" example:"Sweet added successfully"`

	// 欄位層級驗證錯誤
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError 單一欄位的驗證錯誤
// swagger:model dto.FieldError
type FieldError struct {
	Field   string `json:"field" example:"price"`
	Message string `json:"message" example:"price must be 0 or greater"`
}

// OK builds a success envelope with optional data and message.
func OK(data interface{}, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// List builds a success envelope for list responses, carrying the count.
func List(data interface{}, count int) Response {
	return Response{Success: true, Count: &count, Data: data}
}

// Error builds a failure envelope with a message.
func Error(message string) Response {
	return Response{Success: false, Message: message}
}
