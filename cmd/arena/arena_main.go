package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	arenaactor "Highlander/internal/arena/actor"
	arenahttp "Highlander/internal/arena/interfaces/handler/http"
	"Highlander/internal/shared/logs"
	"Highlander/internal/shared/simconfig"
	transporthttp "Highlander/internal/shared/transport/http"
	"Highlander/internal/shared/transport/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "配置文件路径，默认向上查找 configs/conf.yml")
	seed := flag.Int64("seed", 0, "覆盖 arena.seed，0 表示沿用配置")
	flag.Parse()

	conf, v, err := simconfig.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	if *seed != 0 {
		conf.Arena.Seed = *seed
	}
	if err := logs.Init("arena", conf.Log); err != nil {
		panic(err)
	}
	defer logs.Sync()
	logs.Info("conf", zap.Any("conf", conf))

	// 热更新只作用于日志级别；棋盘参数在重开对局时也不会变化
	simconfig.Watch(v, func(next simconfig.Config, err error) {
		if err != nil {
			logs.Warn("config reload rejected", zap.Error(err))
			return
		}
		logs.SetLevel(next.Log.Level)
		logs.Info("config reloaded", zap.String("log_level", logs.Level().String()))
	})

	if !conf.Log.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	baseLogger := logs.L()
	hub := ws.NewHub(baseLogger)
	runtime := arenaactor.NewRuntime(conf, hub, baseLogger)

	host := conf.HTTPServer.Host
	if host == "" {
		host = "0.0.0.0"
	}
	addr := fmt.Sprintf("%s:%d", host, conf.HTTPServer.Port)
	httpServer := transporthttp.NewHttpServer(addr, nil, baseLogger)
	httpModules := []transporthttp.Registrar{
		arenahttp.NewHttpHandler(runtime, hub),
	}
	for _, m := range httpModules {
		m.HttpRegister(httpServer.Group())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logs.Info("arena server started", zap.String("addr", addr), zap.Int("arenas", conf.Arena.Arenas))
		if err := httpServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- fmt.Errorf("arena server start failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		if err != nil {
			logs.Error("服务异常退出", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	hub.Close()
	runtime.Shutdown()
}
