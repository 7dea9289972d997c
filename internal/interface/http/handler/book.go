package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookstore-rest/internal/application/book"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-rest/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	createBookUseCase *appbook.CreateBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	createBookUseCase *appbook.CreateBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		createBookUseCase: createBookUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  分页查询上架图书，支持关键词搜索和排序
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码(从0开始)" default(0)
// @Param        size query int false "每页数量" default(24)
// @Param        keyword query string false "搜索关键词(书名、副标题)"
// @Param        sort query string false "排序方式" Enums(updated_desc, price_asc, price_desc, title_asc)
// @Success      200 {object} response.Response{data=pagination.Page[appbook.Summary]}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:    req.Page,
		Size:    req.Size,
		Keyword: req.Keyword,
		Sort:    req.Sort,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  描述按段落拆分，附带作者、分类和评分汇总
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=appbook.Detail}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	result, err := h.getBookUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateBook 新建图书
// @Summary      新建图书
// @Description  作者、分类必须已存在
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=appbook.Summary}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "作者或分类不存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.createBookUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		IssueYear:    req.IssueYear,
		PageCount:    req.PageCount,
		Hardcover:    req.Hardcover,
		AuthorID:     req.AuthorID,
		CategoryIDs:  req.CategoryIDs,
		Price:        req.Price,
		PromoPrice:   req.PromoPrice,
		Active:       req.Active,
		UnitsInStock: req.UnitsInStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
