package logsvc

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/jakmauu/tutam9-frontend/core/session"
)

func TestRollbarLogger_prepare(t *testing.T) {
	l := RollbarLogger{std: log.New(io.Discard, "", 0)}
	errBoom := errors.New("boom")
	ident := session.Identity{ID: "u1", Username: "awe"}

	// the identity is consumed (reported as the rollbar person), not
	// forwarded as a payload arg
	args := l.prepare("updating assignment", []interface{}{errBoom, ident})
	if len(args) != 2 {
		t.Fatalf("prepare() returned %d args, want 2: %v", len(args), args)
	}
	if args[0] != "updating assignment" {
		t.Errorf("args[0] = %v, want the message", args[0])
	}
	if args[1] != errBoom {
		t.Errorf("args[1] = %v, want the error", args[1])
	}

	// identities never end up in the payload, however many are passed
	second := session.Identity{ID: "u2", Username: "kim"}
	args = l.prepare("updating assignment", []interface{}{ident, second})
	if len(args) != 1 || args[0] != "updating assignment" {
		t.Errorf("prepare() = %v, want only the message", args)
	}

	// no identity at all still yields just the message
	args = l.prepare("fetching assignments", nil)
	if len(args) != 1 || args[0] != "fetching assignments" {
		t.Errorf("prepare() = %v, want only the message", args)
	}
}
