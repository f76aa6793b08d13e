package api_test

import (
	"strings"
	"testing"

	"github.com/momentics/hioload-mock/api"
)

func TestErrorMessageWithoutContext(t *testing.T) {
	err := api.NewError(api.ErrCodeInvalidArgument, "nil task")
	if got := err.Error(); got != "nil task" {
		t.Errorf("Error = %q, want %q", got, "nil task")
	}
}

func TestErrorMessageWithContext(t *testing.T) {
	err := api.NewError(api.ErrCodeInvalidArgument, "nil task").
		WithContext("op", "submit")

	msg := err.Error()
	if !strings.Contains(msg, "nil task") || !strings.Contains(msg, "op:submit") {
		t.Errorf("Error = %q, want message and context", msg)
	}
	if err.Code != api.ErrCodeInvalidArgument {
		t.Errorf("Code = %v, want ErrCodeInvalidArgument", err.Code)
	}
}

func TestWithContextOnNilMap(t *testing.T) {
	err := &api.Error{Code: api.ErrCodeInvalidArgument, Message: "bad"}
	err.WithContext("k", 1)

	if err.Context["k"] != 1 {
		t.Error("WithContext did not initialize the context map")
	}
}
