package report

import (
	"errors"
	"fmt"
	"io/fs"
)

// Role 输入文件角色（用于错误提示）
type Role string

const (
	RoleBehavior  Role = "Behavior Form"
	RoleMiniTest1 Role = "Mini Test 1"
	RoleMiniTest2 Role = "Mini Test 2"
	RoleComments  Role = "JSON Comment File"
)

// FileAccessError 输入文件无法打开
type FileAccessError struct {
	Role Role
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("error opening %s: %s: %v", e.Role, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// OutputPermissionError 输出文件无法写入（通常是文件被其他程序占用）
type OutputPermissionError struct {
	Path string
	Err  error
}

func (e *OutputPermissionError) Error() string {
	return fmt.Sprintf("permission denied writing %s: %v", e.Path, e.Err)
}

func (e *OutputPermissionError) Unwrap() error {
	return e.Err
}

const permissionMessage = "Permission denied. Please ensure the file is not open or in use."

// IsPermissionError 是否为权限类错误（输出被占用或输入无权读取）
func IsPermissionError(err error) bool {
	var outErr *OutputPermissionError
	if errors.As(err, &outErr) {
		return true
	}
	return errors.Is(err, fs.ErrPermission)
}

// FailureMessage 生成面向用户的错误提示
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	if IsPermissionError(err) {
		return permissionMessage
	}
	return fmt.Sprintf("An error occurred: %v", err)
}
