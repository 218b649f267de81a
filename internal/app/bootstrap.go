package app

import (
	"errors"
	"strings"

	"github.com/farmket-server/internal/config"
	"github.com/farmket-server/internal/logger"
	"github.com/farmket-server/internal/provider"
	"github.com/farmket-server/internal/router"
	"github.com/farmket-server/internal/service"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)

	// 启动期保证超级管理员账号存在
	bootstrapSuperuser(cfg, container.UserService)

	engine := router.SetupRouter(cfg, container)
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	httpService := NewHTTPService(addr, engine)

	return NewRunner(httpService), nil
}

// bootstrapSuperuser 按 admin 配置初始化超级管理员；已存在则不动
// 失败只记日志，不阻断启动。
func bootstrapSuperuser(cfg *config.Config, users *service.UserService) {
	email := strings.TrimSpace(cfg.Admin.Email)
	if email == "" {
		return
	}
	if strings.TrimSpace(cfg.Admin.Password) == "" {
		logger.Warnw("bootstrap_superuser_empty_password", "email", email)
	}

	user, created, err := users.EnsureSuperuser(email, cfg.Admin.Password)
	if err != nil {
		logger.Errorw("bootstrap_superuser_failed", "email", email, "error", err)
		return
	}
	if created {
		logger.Infow("bootstrap_superuser_created", "email", email, "user_id", user.ID)
		return
	}
	logger.Debugw("bootstrap_superuser_exists", "email", email, "user_id", user.ID)
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr)
	return RunWithOptions(runner, opts)
}
