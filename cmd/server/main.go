package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/crave-wave/cravewave/internal/app"
	"github.com/crave-wave/cravewave/internal/config"
	"github.com/crave-wave/cravewave/internal/logger"
	"github.com/crave-wave/cravewave/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiOrange = "\033[33m"
	ansiCyan   = "\033[36m"
)

func main() {
	printStartupBanner()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.UserJWT.SecretKey) {
			stdLog.Fatalf("JWT secret is weak or still the default, configure a strong random key in production")
		}
	} else if isWeakSecret(cfg.UserJWT.SecretKey) {
		stdLog.Printf("warning: JWT secret is weak or still the default, replace it before going to production")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	if cfg.Razorpay.KeyID == "" {
		stdLog.Printf("warning: no Razorpay key configured, checkout runs in degraded test mode")
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "run mode: all (default), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("service exited with error: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiOrange + " ██████╗██████╗  █████╗ ██╗   ██╗███████╗    ██╗    ██╗ █████╗ ██╗   ██╗███████╗" + ansiReset)
	fmt.Println(ansiOrange + "██╔════╝██╔══██╗██╔══██╗██║   ██║██╔════╝    ██║    ██║██╔══██╗██║   ██║██╔════╝" + ansiReset)
	fmt.Println(ansiOrange + "██║     ██████╔╝███████║██║   ██║█████╗      ██║ █╗ ██║███████║██║   ██║█████╗  " + ansiReset)
	fmt.Println(ansiOrange + "██║     ██╔══██╗██╔══██║╚██╗ ██╔╝██╔══╝      ██║███╗██║██╔══██║╚██╗ ██╔╝██╔══╝  " + ansiReset)
	fmt.Println(ansiOrange + "╚██████╗██║  ██║██║  ██║ ╚████╔╝ ███████╗    ╚███╔███╔╝██║  ██║ ╚████╔╝ ███████╗" + ansiReset)
	fmt.Println(ansiOrange + " ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝  ╚═══╝  ╚══════╝     ╚══╝╚══╝ ╚═╝  ╚═╝  ╚═══╝  ╚══════╝" + ansiReset)
	fmt.Println(ansiCyan + ansiBold + "Crave Wave API" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
