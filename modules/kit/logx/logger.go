package logx

import (
	"context"

	"go.uber.org/zap"
)

// Logger 是竞技场各层共用的最小日志接口：结构化字段 + ctx 透传。
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	WithContext(ctx context.Context) Logger
}

type nopLogger struct{}

// Nop 返回丢弃一切输出的 Logger。
func Nop() Logger { return nopLogger{} }

func (nopLogger) Info(string, ...zap.Field) {}
func (nopLogger) Error(string, ...zap.Field) {}
func (nopLogger) Debug(string, ...zap.Field) {}
func (nopLogger) Warn(string, ...zap.Field) {}
func (nopLogger) WithContext(context.Context) Logger { return nopLogger{} }
