package entity

import "Highlander/modules/kit/errx"

// Code 表示竞技场领域错误码。
type Code = errx.Code

const (
	CodeInvalidDimension          Code = "ARENA_INVALID_DIMENSION"
	CodeCollaboratorNotConfigured Code = "ARENA_COLLABORATOR_NOT_CONFIGURED"
	CodeNoSpaceAvailable          Code = "ARENA_NO_SPACE_AVAILABLE"
)

type Error = errx.Error

// 哨兵错误：通过 WithData/WithCause 派生，禁止直接修改。
var (
	// ErrInvalidDimension 棋盘边界为负，构造时即失败。
	ErrInvalidDimension = errx.NewBiz(CodeInvalidDimension, "棋盘边界不能为负")
	// ErrCollaboratorNotConfigured 必需的协作者（属性处理器）缺失；补上后可重试。
	ErrCollaboratorNotConfigured = errx.NewSys(CodeCollaboratorNotConfigured, "协作者未配置")
	// ErrNoSpaceAvailable 棋盘已满，找不到空格放置新战士。
	ErrNoSpaceAvailable = errx.NewBiz(CodeNoSpaceAvailable, "棋盘没有空位")
)
