// File: internal/dto/purchase_request.go
package dto

// PurchaseRequest 購買數量，省略時預設為 1
// swagger:model dto.PurchaseRequest
type PurchaseRequest struct {
	Quantity *int `json:"quantity" validate:"omitempty,gt=0" example:"1"`
}
