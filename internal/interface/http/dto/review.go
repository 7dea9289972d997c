package dto

// ListCommentsRequest 评论分页参数
// 沿用pageNumber参数名，默认每页10条
type ListCommentsRequest struct {
	PageNumber int `form:"pageNumber" binding:"omitempty,min=0" example:"0"`
	Size       int `form:"size" binding:"omitempty,min=1,max=100" example:"10"`
}

// AddCommentRequest 新增评论请求
// 长度按字符计算，领域层去掉首尾空白后再校验3-255
type AddCommentRequest struct {
	Content string `json:"content" binding:"required" example:"Great book!"`
}

// SaveRatingRequest 评分请求
// 接口层接受0-5，0是"未评分"占位值，领域层拒绝保存
type SaveRatingRequest struct {
	Vote *int `json:"vote" binding:"required,min=0,max=5" example:"5"`
}
