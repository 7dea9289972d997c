package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookstore-rest/internal/application/author"
	appcategory "github.com/xiebiao/bookstore-rest/internal/application/category"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-rest/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	getAuthorUseCase    *appauthor.GetAuthorUseCase
	createAuthorUseCase *appauthor.CreateAuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(getAuthorUseCase *appauthor.GetAuthorUseCase, createAuthorUseCase *appauthor.CreateAuthorUseCase) *AuthorHandler {
	return &AuthorHandler{
		getAuthorUseCase:    getAuthorUseCase,
		createAuthorUseCase: createAuthorUseCase,
	}
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Description  作者信息 + 作者图书分页（按更新时间倒序）
// @Tags         作者
// @Produce      json
// @Param        id path string true "作者ID"
// @Param        page query int false "页码(从0开始)" default(0)
// @Param        size query int false "每页数量" default(24)
// @Success      200 {object} response.Response{data=appauthor.Wrapper}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.getAuthorUseCase.Execute(c.Request.Context(), appauthor.GetAuthorRequest{
		AuthorID: c.Param("id"),
		Page:     req.Page,
		Size:     req.Size,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateAuthor 新建作者
// @Summary      新建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=appauthor.CreateAuthorResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.createAuthorUseCase.Execute(c.Request.Context(), req.FirstName, req.LastName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	listCategoriesUseCase *appcategory.ListCategoriesUseCase
	getCategoryUseCase    *appcategory.GetCategoryUseCase
	createCategoryUseCase *appcategory.CreateCategoryUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(
	listCategoriesUseCase *appcategory.ListCategoriesUseCase,
	getCategoryUseCase *appcategory.GetCategoryUseCase,
	createCategoryUseCase *appcategory.CreateCategoryUseCase,
) *CategoryHandler {
	return &CategoryHandler{
		listCategoriesUseCase: listCategoriesUseCase,
		getCategoryUseCase:    getCategoryUseCase,
		createCategoryUseCase: createCategoryUseCase,
	}
}

// ListCategories 分类列表
// @Summary      分类列表
// @Description  按名称升序
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=[]appcategory.Item}
// @Router       /api/v1/category [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetCategory 分类详情
// @Summary      分类详情
// @Description  分类信息 + 分类下图书分页（按更新时间倒序）
// @Tags         分类
// @Produce      json
// @Param        id path string true "分类ID"
// @Param        page query int false "页码(从0开始)" default(0)
// @Param        size query int false "每页数量" default(24)
// @Success      200 {object} response.Response{data=appcategory.Wrapper}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/category/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.getCategoryUseCase.Execute(c.Request.Context(), appcategory.GetCategoryRequest{
		CategoryID: c.Param("id"),
		Page:       req.Page,
		Size:       req.Size,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateCategory 新建分类
// @Summary      新建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      201 {object} response.Response{data=appcategory.Item}
// @Failure      400 {object} response.Response "参数错误或名称重复"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/category [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.createCategoryUseCase.Execute(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
