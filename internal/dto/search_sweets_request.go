// File: internal/dto/search_sweets_request.go
package dto

// SearchSweetsRequest 搜尋條件，全部為可選，條件間為 AND
// swagger:model dto.SearchSweetsRequest
type SearchSweetsRequest struct {
	Name     string   `query:"name" validate:"omitempty,max=100" example:"chocolate"`
	Category string   `query:"category" validate:"omitempty,oneof=chocolate candy dessert biscuit other" example:"chocolate"`
	MinPrice *float64 `query:"minPrice" validate:"omitempty,gte=0" example:"0"`
	MaxPrice *float64 `query:"maxPrice" validate:"omitempty,gte=0" example:"10"`
}
