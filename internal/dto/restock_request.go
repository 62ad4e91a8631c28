// File: internal/dto/restock_request.go
package dto

// RestockRequest 補貨數量，必須為正整數
// swagger:model dto.RestockRequest
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0" example:"100"`
}
