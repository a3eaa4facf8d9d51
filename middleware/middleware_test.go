package middleware

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/topicgate/topicgate/errors"
)

type stubRequest struct {
	setErr   error
	valid    bool
	field    string
	msg      string
	setCalls int
}

func (s *stubRequest) Set(_ *http.Request) error {
	s.setCalls++
	return s.setErr
}

func (s *stubRequest) Validate() (bool, string, string) {
	return s.valid, s.field, s.msg
}

func (s *stubRequest) String() string { return "stub" }

func chain(r *http.Request) Middleware {
	init := NewRequestInit(r)
	validate := &RequestValidate{}
	init.SetNext(validate)
	validate.SetNext(&RequestCheck{})
	return init
}

func TestChain(t *testing.T) {
	r, _ := http.NewRequest("GET", "/topics", nil)

	t.Run("happy path reaches terminal check", func(t *testing.T) {
		req := &stubRequest{valid: true}
		_, kind, msg := chain(r).Execute(context.Background(), req)
		if kind != errors.KindNoError || msg != "" {
			t.Fatalf("kind=%d msg=%q", kind, msg)
		}
		if req.setCalls != 1 {
			t.Fatalf("setCalls=%d", req.setCalls)
		}
	})

	t.Run("bind failure stops the chain", func(t *testing.T) {
		req := &stubRequest{setErr: fmt.Errorf("broken body"), valid: true}
		_, kind, _ := chain(r).Execute(context.Background(), req)
		if kind != errors.KindInvalidRequest {
			t.Fatalf("kind=%d", kind)
		}
	})

	t.Run("validation failure formats the field", func(t *testing.T) {
		req := &stubRequest{valid: false, field: "offset", msg: "must not be negative"}
		_, kind, msg := chain(r).Execute(context.Background(), req)
		if kind != errors.KindInvalidRequest {
			t.Fatalf("kind=%d", kind)
		}
		if msg != "field offset: must not be negative" {
			t.Fatalf("msg=%q", msg)
		}
	})

	t.Run("validation failure without field keeps default message", func(t *testing.T) {
		req := &stubRequest{valid: false}
		_, kind, msg := chain(r).Execute(context.Background(), req)
		if kind != errors.KindInvalidRequest || msg != "" {
			t.Fatalf("kind=%d msg=%q", kind, msg)
		}
	})
}
