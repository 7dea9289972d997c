package dto

import "github.com/shopspring/decimal"

// CreateBookRequest HTTP新建图书请求
// validator tag说明:
// - required: 必填字段
// - min/max: 长度、数值范围校验
// 价格范围(0-999.99)、促销价不高于原价由领域工厂校验
type CreateBookRequest struct {
	Title        string              `json:"title" binding:"required,max=255" example:"The Go Programming Language"`
	Subtitle     string              `json:"subtitle" binding:"max=255" example:"Addison-Wesley Professional Computing Series"`
	Description  string              `json:"description" binding:"max=10000" example:"第一段\n第二段"`
	ImageURL     string              `json:"imageUrl" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
	IssueYear    int                 `json:"issueYear" binding:"omitempty,min=1000,max=9999" example:"2015"`
	PageCount    int                 `json:"pageCount" binding:"min=0" example:"380"`
	Hardcover    bool                `json:"hardcover" example:"false"`
	AuthorID     string              `json:"authorId" binding:"required,uuid" example:"5f0c8a7e-2b7c-4b9a-9a53-0f7f2c1f8f10"`
	CategoryIDs  []string            `json:"categoryIds" binding:"dive,uuid"`
	Price        decimal.Decimal     `json:"price" swaggertype:"string" example:"39.99"`
	PromoPrice   decimal.NullDecimal `json:"promoPrice" swaggertype:"string" example:"29.99"`
	Active       bool                `json:"active" example:"true"`
	UnitsInStock int                 `json:"unitsInStock" binding:"min=0" example:"100"`
}

// ListBooksRequest HTTP图书列表请求
// 页码从0开始
type ListBooksRequest struct {
	Page    int    `form:"page" binding:"omitempty,min=0" example:"0"`
	Size    int    `form:"size" binding:"omitempty,min=1,max=100" example:"24"`
	Keyword string `form:"keyword" binding:"omitempty,max=100" example:"Go"`
	Sort    string `form:"sort" binding:"omitempty,oneof=updated_desc price_asc price_desc title_asc" example:"updated_desc"`
}

// PageRequest 详情页中子集合的分页参数
type PageRequest struct {
	Page int `form:"page" binding:"omitempty,min=0" example:"0"`
	Size int `form:"size" binding:"omitempty,min=1,max=100" example:"24"`
}

// CreateAuthorRequest HTTP新建作者请求（姓和名不能同时为空）
type CreateAuthorRequest struct {
	FirstName string `json:"firstName" binding:"max=100" example:"Alan"`
	LastName  string `json:"lastName" binding:"max=100" example:"Donovan"`
}

// CreateCategoryRequest HTTP新建分类请求
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"Programming"`
}
