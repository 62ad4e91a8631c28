// File: internal/dto/create_sweet_request.go
package dto

// CreateSweetRequest 新增甜點的請求格式
// Price 與 Quantity 使用指標以區分「缺欄位」與「零值」
// swagger:model dto.CreateSweetRequest
type CreateSweetRequest struct {
	Name        string   `json:"name" validate:"required,max=100" example:"Chocolate Bar"`
	Category    string   `json:"category" validate:"required,oneof=chocolate candy dessert biscuit other" example:"chocolate"`
	Price       *float64 `json:"price" validate:"required,gte=0" example:"2.5"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0" example:"10"`
	Description string   `json:"description" validate:"omitempty,max=500" example:"Dark chocolate, 70%"`
}
