package logx

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// RoundLog 是一回合结束后的摘要，避免 logx 依赖领域包。
type RoundLog struct {
	Round     int
	Fights    int
	Ties      int
	Removed   []int
	Survivors int
	Concluded bool
}

// ReportRoundWithLoggerContext 每回合一条 INFO；决出最后胜者的回合升级为 WARN 便于检索。
func ReportRoundWithLoggerContext(ctx context.Context, l Logger, r RoundLog, fields ...zap.Field) {
	if l == nil {
		return
	}
	base := []zap.Field{
		zap.String("log_type", "round"),
		zap.Int("round", r.Round),
		zap.Int("fights", r.Fights),
		zap.Int("ties", r.Ties),
		zap.Int("survivors", r.Survivors),
	}
	if len(r.Removed) != 0 {
		base = append(base, zap.Ints("removed", r.Removed))
	}
	base = append(base, fields...)

	withCtx := l.WithContext(ctx)
	if r.Concluded {
		withCtx.Warn("arena concluded", append(base, zap.Bool("concluded", true))...)
		return
	}
	withCtx.Info("round finished", base...)
}

// SysLog 是技术错误日志的强类型输入。
type SysLog struct {
	Action string
	Err    error
}

func NewSysLog(action string, err error) SysLog {
	return SysLog{Action: action, Err: err}
}

// ReportSysErrorWithLoggerContext 记录技术错误：ERROR、err_type=sys，附带错误码/cause链/发生处栈。
func ReportSysErrorWithLoggerContext(ctx context.Context, l Logger, sys SysLog, fields ...zap.Field) {
	if sys.Err == nil || l == nil {
		return
	}
	action := sys.Action
	if action == "" {
		action = "sys_error"
	}
	meta := BuildErrorLog(sys.Err)
	base := []zap.Field{
		zap.String("err_type", "sys"),
		zap.String("action", action),
	}
	if meta.Code != "" {
		base = append(base, zap.String("error_code", meta.Code))
	}
	if len(meta.CauseChain) != 0 {
		base = append(base, zap.Strings("cause_chain", meta.CauseChain))
	}
	if len(meta.Data) != 0 {
		base = append(base, zap.Any("error_data", meta.Data))
	}
	if meta.Origin != "" {
		base = append(base, zap.String("origin_caller", meta.Origin))
	}
	if meta.Stack != "" {
		base = append(base, zap.String("stack_origin", meta.Stack))
	}
	base = append(base, fields...)
	l.WithContext(ctx).Error(fmt.Sprintf("%s, error:%s", action, meta.Error), base...)
}

// ReportAccessWithLoggerContext 输出一条访问日志；biz_code=0 为 INFO，>=500 为 ERROR，其余 WARN。
func ReportAccessWithLoggerContext(ctx context.Context, l Logger, action string, bizCode int, fields ...zap.Field) {
	if l == nil {
		return
	}
	base := append([]zap.Field{
		zap.String("log_type", "access"),
		zap.String("action", action),
		zap.Int("biz_code", bizCode),
	}, fields...)

	withCtx := l.WithContext(ctx)
	switch {
	case bizCode == 0:
		withCtx.Info("access", base...)
	case bizCode >= 500:
		withCtx.Error("access", base...)
	default:
		withCtx.Warn("access", base...)
	}
}
