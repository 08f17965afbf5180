package errx

import (
	"errors"
	"fmt"
	"runtime"
)

// Code 是错误的稳定语义标识，errors.Is 只比较它。
type Code string

type kind uint8

const (
	kindBiz kind = iota
	kindSys
)

// Error 是 kit 内统一的错误模型。
//
// 约束：
//   - 哨兵错误不可修改，WithData/WithCause 总是派生新对象
//   - 业务错误（前置条件不满足、参数不合法）不带栈
//   - 系统错误在第一次挂 cause 时捕获一次栈
type Error struct {
	code  Code
	msg   string
	data  map[string]any
	cause error
	stack []uintptr
	kind  kind
}

func NewBiz(code Code, msg string) *Error {
	return &Error{code: code, msg: msg, kind: kindBiz}
}

func NewSys(code Code, msg string) *Error {
	return &Error{code: code, msg: msg, kind: kindSys}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := string(e.code)
	if e.msg != "" {
		s += ": " + e.msg
	}
	if e.cause != nil {
		s = fmt.Sprintf("%s: %v", s, e.cause)
	}
	return s
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is 按错误码判断语义，忽略 msg/data/cause。
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if e == nil || !ok || t == nil {
		return false
	}
	return e.code == t.code
}

func (e *Error) Code() Code {
	if e == nil {
		return ""
	}
	return e.code
}

func (e *Error) CodeText() string {
	return string(e.Code())
}

func (e *Error) Msg() string {
	if e == nil {
		return ""
	}
	return e.msg
}

// IsSys 表示是否为系统类错误。
func (e *Error) IsSys() bool {
	return e != nil && e.kind == kindSys
}

// Data 返回上下文的拷贝。
func (e *Error) Data() map[string]any {
	if e == nil || len(e.data) == 0 {
		return nil
	}
	out := make(map[string]any, len(e.data))
	for k, v := range e.data {
		out[k] = v
	}
	return out
}

func (e *Error) Stack() []uintptr {
	if e == nil || len(e.stack) == 0 {
		return nil
	}
	return append([]uintptr(nil), e.stack...)
}

func (e *Error) WithData(key string, value any) *Error {
	next := e.clone()
	if next.data == nil {
		next.data = make(map[string]any, 1)
	}
	next.data[key] = value
	return next
}

func (e *Error) WithDataMap(data map[string]any) *Error {
	next := e.clone()
	if len(data) == 0 {
		return next
	}
	if next.data == nil {
		next.data = make(map[string]any, len(data))
	}
	for k, v := range data {
		next.data[k] = v
	}
	return next
}

func (e *Error) WithCause(cause error) *Error {
	next := e.clone()
	next.cause = cause
	// 下层已经有栈时不再重复捕获
	if next.kind == kindSys && cause != nil && len(next.stack) == 0 && !chainHasStack(cause) {
		next.stack = callers(3)
	}
	return next
}

func (e *Error) clone() *Error {
	next := &Error{
		code:  e.code,
		msg:   e.msg,
		cause: e.cause,
		stack: e.Stack(),
		kind:  e.kind,
	}
	next.data = e.Data()
	return next
}

func callers(skip int) []uintptr {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip, pcs)
	if n <= 0 {
		return nil
	}
	return pcs[:n]
}

func chainHasStack(err error) bool {
	for i := 0; i < 32 && err != nil; i++ {
		if sp, ok := err.(interface{ Stack() []uintptr }); ok && len(sp.Stack()) != 0 {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// CodeOf 取错误链上第一个 *Error 的码；链上没有 *Error 时返回 ("", false)。
func CodeOf(err error) (Code, bool) {
	var e *Error
	if !errors.As(err, &e) || e == nil {
		return "", false
	}
	return e.code, true
}
