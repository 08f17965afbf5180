package errx

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is_只按code比较语义(t *testing.T) {
	e1 := NewBiz("ARENA_X", "x").WithData("k", "v").WithCause(errors.New("cause1"))
	e2 := NewBiz("ARENA_X", "y").WithData("k2", "v2")
	if !errors.Is(e1, e2) {
		t.Fatalf("期望 errors.Is(e1, e2)==true，e1=%v e2=%v", e1, e2)
	}
	if errors.Is(e1, ErrInvalidParam) {
		t.Fatalf("不同 code 不应匹配，e1=%v", e1)
	}

	wrapped := fmt.Errorf("wrap: %w", e1)
	if !errors.Is(wrapped, e2) {
		t.Fatalf("期望经过 fmt.Errorf 包装后仍能匹配，wrapped=%v", wrapped)
	}
}

func TestError_业务错误不捕获栈_但保留cause链(t *testing.T) {
	cause := errors.New("board is full")
	err := NewBiz("ARENA_NO_SPACE", "").WithCause(cause)
	if got := err.Stack(); got != nil {
		t.Fatalf("期望业务错误不捕获栈，got=%v", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 cause 链不丢，err=%v", err)
	}
}

func TestError_系统错误捕获一次栈_且不重复捕获(t *testing.T) {
	sys := NewSys("SYS_ACTOR", "actor 请求失败").WithCause(errors.New("future timeout"))
	if got := sys.Stack(); len(got) == 0 {
		t.Fatalf("期望系统错误捕获栈，got=%v", got)
	}
	sys2 := ErrUnavailable.WithCause(sys)
	if got := sys2.Stack(); got != nil {
		t.Fatalf("期望 cause 链已有栈时上层不再捕获，got=%v", got)
	}
	if !sys2.IsSys() {
		t.Fatalf("期望 ErrUnavailable 为系统错误")
	}
}

func TestError_WithData_不污染哨兵错误(t *testing.T) {
	m := map[string]any{"x_limit": -1}
	err := ErrInvalidParam.WithDataMap(m)
	m["x_limit"] = 7

	if ErrInvalidParam.Data() != nil {
		t.Fatalf("哨兵错误 data 被修改, got=%v", ErrInvalidParam.Data())
	}
	if got := err.Data()["x_limit"]; got != -1 {
		t.Fatalf("期望构造时复制 data，got=%v", got)
	}
}

func TestError_Error_文本格式(t *testing.T) {
	err := NewBiz("ARENA_X", "msg").WithCause(errors.New("boom"))
	if got, want := err.Error(), "ARENA_X: msg: boom"; got != want {
		t.Fatalf("Error() got=%q want=%q", got, want)
	}
	if got, want := NewBiz("ARENA_Y", "").Error(), "ARENA_Y"; got != want {
		t.Fatalf("Error() got=%q want=%q", got, want)
	}
}

func TestCodeOf_穿透fmt包装(t *testing.T) {
	wrapped := fmt.Errorf("next round: %w", ErrTimeout.WithData("arena_id", 1))
	if code, ok := CodeOf(wrapped); !ok || code != CodeTimeout {
		t.Fatalf("code=%q ok=%v", code, ok)
	}
	if _, ok := CodeOf(errors.New("plain")); ok {
		t.Fatalf("普通错误不应取到码")
	}
}
