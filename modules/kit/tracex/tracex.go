package tracex

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

type traceIDKey struct{}
type arenaKey struct{}
type roundKey struct{}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func TraceIDFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(traceIDKey{}).(string)
	return s, ok && s != ""
}

// WithArena 把竞技场编号挂到 ctx，日志会自动带上 arena_id。
func WithArena(ctx context.Context, arenaID int) context.Context {
	return context.WithValue(ctx, arenaKey{}, arenaID)
}

func ArenaFrom(ctx context.Context) (int, bool) {
	if ctx == nil {
		return 0, false
	}
	id, ok := ctx.Value(arenaKey{}).(int)
	return id, ok
}

// WithRound 记录当前回合号。
func WithRound(ctx context.Context, round int) context.Context {
	return context.WithValue(ctx, roundKey{}, round)
}

func RoundFrom(ctx context.Context) (int, bool) {
	if ctx == nil {
		return 0, false
	}
	r, ok := ctx.Value(roundKey{}).(int)
	return r, ok
}

// NewTraceID 生成 16 字节随机 trace_id（hex）。
func NewTraceID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ""
	}
	return hex.EncodeToString(b[:])
}
