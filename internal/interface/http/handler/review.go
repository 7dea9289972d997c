package handler

import (
	"github.com/gin-gonic/gin"

	appcomment "github.com/xiebiao/bookstore-rest/internal/application/comment"
	apprating "github.com/xiebiao/bookstore-rest/internal/application/rating"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-rest/pkg/response"
)

// MessageRatingUnchanged 评分未变化时的提示
const MessageRatingUnchanged = "评分未变化"

// CommentHandler 评论HTTP处理器
type CommentHandler struct {
	listCommentsUseCase *appcomment.ListCommentsUseCase
	addCommentUseCase   *appcomment.AddCommentUseCase
}

// NewCommentHandler 创建评论处理器
func NewCommentHandler(listCommentsUseCase *appcomment.ListCommentsUseCase, addCommentUseCase *appcomment.AddCommentUseCase) *CommentHandler {
	return &CommentHandler{
		listCommentsUseCase: listCommentsUseCase,
		addCommentUseCase:   addCommentUseCase,
	}
}

// ListComments 评论分页
// @Summary      图书评论列表
// @Description  按更新时间倒序，默认每页10条；图书不存在返回400
// @Tags         评论
// @Produce      json
// @Param        bookId path string true "图书ID"
// @Param        pageNumber query int false "页码(从0开始)" default(0)
// @Param        size query int false "每页数量" default(10)
// @Success      200 {object} response.Response{data=pagination.Page[appcomment.View]}
// @Failure      400 {object} response.Response "参数错误或图书不存在"
// @Router       /api/v1/comments/{bookId} [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	var req dto.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.listCommentsUseCase.Execute(c.Request.Context(), appcomment.ListCommentsRequest{
		BookID: c.Param("bookId"),
		Page:   req.PageNumber,
		Size:   req.Size,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AddComment 新增评论
// @Summary      新增评论
// @Description  内容去掉首尾空白后3-255个字符，返回图书的全部评论
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path string true "图书ID"
// @Param        userId path string true "用户ID(必须是当前用户)"
// @Param        request body dto.AddCommentRequest true "评论内容"
// @Success      201 {object} response.Response{data=[]appcomment.Item}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "无权操作"
// @Failure      404 {object} response.Response "图书或用户不存在"
// @Router       /api/v1/comments/{bookId}/user/{userId} [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.addCommentUseCase.Execute(c.Request.Context(), appcomment.AddCommentRequest{
		BookID:  c.Param("bookId"),
		UserID:  c.Param("userId"),
		Content: req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// RatingHandler 评分HTTP处理器
type RatingHandler struct {
	ratingUseCase *apprating.UseCase
}

// NewRatingHandler 创建评分处理器
func NewRatingHandler(ratingUseCase *apprating.UseCase) *RatingHandler {
	return &RatingHandler{ratingUseCase: ratingUseCase}
}

// ListRatings 图书的全部评分
// @Summary      图书评分列表
// @Tags         评分
// @Produce      json
// @Param        bookId path string true "图书ID"
// @Success      200 {object} response.Response{data=[]apprating.View}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/ratings/{bookId} [get]
func (h *RatingHandler) ListRatings(c *gin.Context) {
	result, err := h.ratingUseCase.List(c.Request.Context(), c.Param("bookId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetRating 用户对图书的评分
// @Summary      用户评分
// @Description  未评分时返回vote=0的占位对象
// @Tags         评分
// @Produce      json
// @Param        bookId path string true "图书ID"
// @Param        userId path string true "用户ID"
// @Success      200 {object} response.Response{data=apprating.View}
// @Failure      404 {object} response.Response "图书或用户不存在"
// @Router       /api/v1/ratings/{bookId}/user/{userId} [get]
func (h *RatingHandler) GetRating(c *gin.Context) {
	result, err := h.ratingUseCase.Get(c.Request.Context(), c.Param("bookId"), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SaveRating 评分（新增或修改）
// @Summary      保存评分
// @Description  新增或修改返回201和图书的全部评分；分值未变化返回200和提示信息
// @Tags         评分
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path string true "图书ID"
// @Param        userId path string true "用户ID(必须是当前用户)"
// @Param        request body dto.SaveRatingRequest true "评分(1-5)"
// @Success      201 {object} response.Response{data=[]apprating.View}
// @Success      200 {object} response.Response "评分未变化"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "无权操作"
// @Failure      404 {object} response.Response "图书或用户不存在"
// @Router       /api/v1/ratings/{bookId}/user/{userId} [post]
func (h *RatingHandler) SaveRating(c *gin.Context) {
	var req dto.SaveRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.ratingUseCase.Save(c.Request.Context(), *req.Vote, c.Param("bookId"), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.Changed {
		response.Message(c, MessageRatingUnchanged)
		return
	}
	response.Created(c, result.Ratings)
}

// DeleteRating 删除评分
// @Summary      删除评分
// @Description  返回图书剩余的评分
// @Tags         评分
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path string true "图书ID"
// @Param        userId path string true "用户ID(必须是当前用户)"
// @Success      200 {object} response.Response{data=[]apprating.View}
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "无权操作"
// @Failure      404 {object} response.Response "图书、用户或评分不存在"
// @Router       /api/v1/ratings/{bookId}/user/{userId} [delete]
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	result, err := h.ratingUseCase.Delete(c.Request.Context(), c.Param("bookId"), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
