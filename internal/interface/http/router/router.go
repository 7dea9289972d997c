// Package router 注册全部HTTP路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookstore-rest/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-rest/pkg/response"
)

// Handlers 路由需要的全部处理器（wire.Struct注入）
type Handlers struct {
	Book     *handler.BookHandler
	Author   *handler.AuthorHandler
	Category *handler.CategoryHandler
	Comment  *handler.CommentHandler
	Rating   *handler.RatingHandler
	Checkout *handler.CheckoutHandler
	User     *handler.UserHandler
}

// New 创建Gin引擎并注册路由
// 中间件顺序：Recovery → Tracing → Logger → Metrics → 限流
func New(cfg *config.Config, h *Handlers, auth *middleware.AuthMiddleware, limiter *middleware.RateLimiter) *gin.Engine {
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Tracing(), middleware.Logger())
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.Handler()))
	}
	if cfg.RateLimit.Enabled && limiter != nil {
		r.Use(limiter.Middleware())
	}

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	Register(r.Group("/api/v1"), h, auth)
	return r
}

// Register 注册/api/v1下的业务路由
func Register(v1 *gin.RouterGroup, h *Handlers, auth *middleware.AuthMiddleware) {
	requireAuth := auth.RequireAuth()

	books := v1.Group("/books")
	{
		books.GET("", h.Book.ListBooks)
		books.GET("/:id", h.Book.GetBook)
		books.POST("", requireAuth, h.Book.CreateBook)
	}

	authors := v1.Group("/authors")
	{
		authors.GET("/:id", h.Author.GetAuthor)
		authors.POST("", requireAuth, h.Author.CreateAuthor)
	}

	categories := v1.Group("/category")
	{
		categories.GET("", h.Category.ListCategories)
		categories.GET("/:id", h.Category.GetCategory)
		categories.POST("", requireAuth, h.Category.CreateCategory)
	}

	// 写操作只能以自己的身份进行
	self := middleware.RequireSelf("userId")

	comments := v1.Group("/comments")
	{
		comments.GET("/:bookId", h.Comment.ListComments)
		comments.POST("/:bookId/user/:userId", requireAuth, self, h.Comment.AddComment)
	}

	ratings := v1.Group("/ratings")
	{
		ratings.GET("/:bookId", h.Rating.ListRatings)
		ratings.GET("/:bookId/user/:userId", h.Rating.GetRating)
		ratings.POST("/:bookId/user/:userId", requireAuth, self, h.Rating.SaveRating)
		ratings.DELETE("/:bookId/user/:userId", requireAuth, self, h.Rating.DeleteRating)
	}

	checkout := v1.Group("/checkout")
	{
		checkout.POST("/purchase", h.Checkout.Purchase)
		checkout.GET("/orders/:trackingNumber", h.Checkout.GetOrder)
	}

	users := v1.Group("/users")
	{
		users.POST("/register", h.User.Register)
		users.POST("/login", h.User.Login)
		users.POST("/refresh", h.User.Refresh)
		users.POST("/logout", requireAuth, h.User.Logout)
		users.GET("/me", requireAuth, h.User.Profile)
		users.DELETE("/me", requireAuth, h.User.DeleteAccount)
	}
}
