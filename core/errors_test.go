package core

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EMISSING, "no font %q", "Fixed")
	if Code(err) != EMISSING {
		t.Errorf("expected code %d, have %d", EMISSING, Code(err))
	}
	if UserMessage(err) != `no font "Fixed"` {
		t.Errorf("unexpected user message %q", UserMessage(err))
	}
	wrapped := fmt.Errorf("matching: %w", err)
	if Code(wrapped) != EMISSING {
		t.Errorf("expected code to survive wrapping, have %d", Code(wrapped))
	}
	if Code(nil) != NOERROR || UserMessage(nil) != "" {
		t.Errorf("nil error should be NOERROR without message")
	}
	if Code(errors.New("plain")) != EINTERNAL {
		t.Errorf("plain errors should report EINTERNAL")
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("sizes unsorted")
	err := WrapError(base, EINVALID, "font %s", "Fixed")
	if !errors.Is(err, base) {
		t.Errorf("expected wrapped error to unwrap to its cause")
	}
	if Code(err) != EINVALID {
		t.Errorf("expected code %d, have %d", EINVALID, Code(err))
	}
	if Code(WrapError(nil, EINVALID, "x")) != EINVALID {
		t.Errorf("wrapping nil should still carry the code")
	}
}

func TestUserError(t *testing.T) {
	var out strings.Builder
	stderr = &out
	defer func() { stderr = os.Stderr }()
	//
	UserError(fmt.Errorf("startup: %w", Error(EMISSING, "no fonts registered")))
	UserError(errors.New("terminal gone"))
	expected := "[122] no fonts registered\nError: terminal gone\n"
	if out.String() != expected {
		t.Errorf("expected user output %q, have %q", expected, out.String())
	}
}
