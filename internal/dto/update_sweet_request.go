// File: internal/dto/update_sweet_request.go
package dto

// UpdateSweetRequest 部分更新甜點，nil 欄位保持原值
// swagger:model dto.UpdateSweetRequest
type UpdateSweetRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=100" example:"Chocolate Cake"`
	Category    *string  `json:"category" validate:"omitempty,oneof=chocolate candy dessert biscuit other" example:"dessert"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0" example:"4.0"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0" example:"5"`
	Description *string  `json:"description" validate:"omitempty,max=500" example:"Layered with ganache"`
}
