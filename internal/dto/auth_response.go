// File: internal/dto/auth_response.go
package dto

// AuthResponse 註冊與登入成功後的資料負載
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Token string       `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
	User  UserResponse `json:"user"`
}
