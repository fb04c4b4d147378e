package report

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestFailureMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"generic", errors.New("boom"), "An error occurred: boom"},
		{
			"output locked",
			&OutputPermissionError{Path: "out.xlsx", Err: fs.ErrPermission},
			permissionMessage,
		},
		{
			"input unreadable",
			&FileAccessError{Role: RoleBehavior, Path: "b.xlsx", Err: fmt.Errorf("open b.xlsx: %w", fs.ErrPermission)},
			permissionMessage,
		},
		{
			"input missing",
			&FileAccessError{Role: RoleComments, Path: "c.json", Err: fs.ErrNotExist},
			"An error occurred: error opening JSON Comment File: c.json: file does not exist",
		},
	}

	for _, tc := range cases {
		if got := FailureMessage(tc.err); got != tc.want {
			t.Fatalf("%s: FailureMessage() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCheckFileAccessEmptyPath(t *testing.T) {
	err := CheckFileAccess(RoleMiniTest1, "  ")
	var accessErr *FileAccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("expected FileAccessError, got %v", err)
	}
	if accessErr.Role != RoleMiniTest1 {
		t.Fatalf("role = %s, want %s", accessErr.Role, RoleMiniTest1)
	}
}
