package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/farmket-server/internal/app"
	"github.com/farmket-server/internal/config"
	"github.com/farmket-server/internal/logger"
	"github.com/farmket-server/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiGreen  = "\033[32m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[93m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiYellow + "╔══════════════════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiYellow + "║                 🌾 Farmket API 启动中                   ║" + ansiReset)
	fmt.Println(ansiYellow + "╚══════════════════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiCyan + "███████╗ █████╗ ██████╗ ███╗   ███╗██╗  ██╗███████╗████████╗" + ansiReset)
	fmt.Println(ansiCyan + "██╔════╝██╔══██╗██╔══██╗████╗ ████║██║ ██╔╝██╔════╝╚══██╔══╝" + ansiReset)
	fmt.Println(ansiCyan + "█████╗  ███████║██████╔╝██╔████╔██║█████╔╝ █████╗     ██║   " + ansiReset)
	fmt.Println(ansiCyan + "██╔══╝  ██╔══██║██╔══██╗██║╚██╔╝██║██╔═██╗ ██╔══╝     ██║   " + ansiReset)
	fmt.Println(ansiCyan + "██║     ██║  ██║██║  ██║██║ ╚═╝ ██║██║  ██╗███████╗   ██║   " + ansiReset)
	fmt.Println(ansiCyan + "╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝  ╚═╝╚══════╝   ╚═╝   " + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Farm produce marketplace API" + ansiReset)
	fmt.Println(ansiBlue + "• Source: https://github.com/farmket-server" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
