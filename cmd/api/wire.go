//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
//
// 依赖链：
// Repository ← Service ← UseCase ← Handler ← router.New

package main

import (
	"github.com/google/wire"

	appauthor "github.com/xiebiao/bookstore-rest/internal/application/author"
	appbook "github.com/xiebiao/bookstore-rest/internal/application/book"
	appcategory "github.com/xiebiao/bookstore-rest/internal/application/category"
	appcomment "github.com/xiebiao/bookstore-rest/internal/application/comment"
	apporder "github.com/xiebiao/bookstore-rest/internal/application/order"
	apprating "github.com/xiebiao/bookstore-rest/internal/application/rating"
	appuser "github.com/xiebiao/bookstore-rest/internal/application/user"
	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/comment"
	"github.com/xiebiao/bookstore-rest/internal/domain/notification"
	"github.com/xiebiao/bookstore-rest/internal/domain/rating"
	"github.com/xiebiao/bookstore-rest/internal/domain/transaction"
	"github.com/xiebiao/bookstore-rest/internal/domain/user"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/cache"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/mail"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/messaging"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis、邮件、消息队列、进程内缓存
var infrastructureSet = wire.NewSet(
	mysql.NewDB,
	redis.NewClient,
	redis.NewSessionStore,
	wire.Bind(new(user.SessionStore), new(*redis.SessionStore)),
	cache.ProvideLoginAttemptCache,
	wire.Bind(new(user.LoginAttempts), new(*cache.LoginAttemptCache)),
	mail.NewSMTPMailer,
	wire.Bind(new(notification.Mailer), new(*mail.SMTPMailer)),
	messaging.ProvideEventPublisher,
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewAuthorRepository,
	mysql.NewCategoryRepository,
	mysql.NewCommentRepository,
	mysql.NewRatingRepository,
	mysql.NewOrderRepository,
	mysql.NewTxManager,
	wire.Bind(new(transaction.Manager), new(*mysql.TxManager)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
	rating.NewService,
	comment.NewService,
)

// applicationSet 应用层用例
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewCreateBookUseCase,
	appauthor.NewGetAuthorUseCase,
	appauthor.NewCreateAuthorUseCase,
	appcategory.NewListCategoriesUseCase,
	appcategory.NewGetCategoryUseCase,
	appcategory.NewCreateCategoryUseCase,
	appcomment.NewListCommentsUseCase,
	appcomment.NewAddCommentUseCase,
	apprating.NewUseCase,
	apporder.NewPlaceOrderUseCase,
	apporder.NewGetOrderUseCase,
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewRefreshUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewProfileUseCase,
	appuser.NewDeleteAccountUseCase,
)

// interfaceSet 处理器、中间件、路由
var interfaceSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
	middleware.ProvideRateLimiter,
	handler.NewBookHandler,
	handler.NewAuthorHandler,
	handler.NewCategoryHandler,
	handler.NewCommentHandler,
	handler.NewRatingHandler,
	handler.NewCheckoutHandler,
	handler.NewUserHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
	wire.Struct(new(App), "*"),
)

// InitializeApp 组装整个应用
// 返回的cleanup关闭消息队列连接
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
	)
	return nil, nil, nil
}
