package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookstore-rest/docs"
	"github.com/xiebiao/bookstore-rest/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-rest/pkg/jwt"
	"github.com/xiebiao/bookstore-rest/pkg/logger"
	"github.com/xiebiao/bookstore-rest/pkg/metrics"
	"github.com/xiebiao/bookstore-rest/pkg/tracing"
)

// @title                       Bookstore REST API
// @version                     1.0
// @description                 在线书店：图书目录、评论评分、结算下单、用户账号
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

// App wire组装的结果
type App struct {
	Engine  *gin.Engine
	Limiter *middleware.RateLimiter
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 日志
	zl, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	logger.ReplaceGlobals(zl)
	defer func() { _ = zl.Sync() }()

	// 3. 指标与链路追踪
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}
	shutdownTracer, err := tracing.InitTracer(context.Background(), tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		zl.Fatal("初始化链路追踪失败", zap.Error(err))
	}

	// 4. 依赖注入
	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		zl.Fatal("初始化应用失败", zap.Error(err))
	}
	defer cleanup()

	// 5. 定期清理限流记录
	if cfg.RateLimit.Enabled {
		purger, err := app.Limiter.StartPurge(cfg.RateLimit.PurgeSpec)
		if err != nil {
			zl.Fatal("启动限流清理任务失败", zap.Error(err))
		}
		defer purger.Stop()
	}

	// 6. 启动HTTP服务
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		zl.Info("服务启动", zap.String("addr", srv.Addr), zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("启动服务失败", zap.Error(err))
		}
	}()

	// 7. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("正在关闭服务...")

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("服务关闭超时", zap.Error(err))
	}
	if err := shutdownTracer(ctx); err != nil {
		zl.Warn("关闭链路追踪失败", zap.Error(err))
	}
	zl.Info("服务已退出")
}
