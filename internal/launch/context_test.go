package launch

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNewContext_SnapshotsInputs(t *testing.T) {
	args := []string{"bloom-splash", "book.bloomcollection"}
	env := map[string]string{"HOME": "/home/me"}

	ctx, err := NewContext(args, env, Options{SelfDir: "/opt/bloom", Exists: func(string) bool { return false }})
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}
	if ctx.ID == "" {
		t.Fatalf("ID is empty")
	}
	if ctx.Interpreter != SystemInterpreter {
		t.Fatalf("Interpreter = %q, want %q", ctx.Interpreter, SystemInterpreter)
	}

	// Later mutation of the inputs must not leak into the context.
	args[1] = "changed"
	env["HOME"] = "/tmp"

	if got := ctx.Args(); got[1] != "book.bloomcollection" {
		t.Fatalf("Args()[1] = %q, want %q", got[1], "book.bloomcollection")
	}
	if got := ctx.Env()["HOME"]; got != "/home/me" {
		t.Fatalf("Env()[HOME] = %q, want %q", got, "/home/me")
	}

	// Copies handed out are independent too.
	ctx.Env()["HOME"] = "/root"
	if got := ctx.Env()["HOME"]; got != "/home/me" {
		t.Fatalf("Env()[HOME] = %q after mutating a copy", got)
	}
}

func TestNewContext_NilEnv(t *testing.T) {
	ctx, err := NewContext(nil, nil, Options{SelfDir: "/opt/bloom", Exists: func(string) bool { return false }})
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}
	if ctx.Env() == nil {
		t.Fatalf("Env() = nil, want empty map")
	}
}

func TestContext_Argv(t *testing.T) {
	dir := t.TempDir()
	payload := filepath.Join(dir, DefaultPayload)
	if err := os.WriteFile(payload, []byte("MZ"), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx, err := NewContext([]string{"bloom-splash", "-x"}, nil, Options{SelfDir: dir, Exists: func(string) bool { return true }})
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}

	got, err := ctx.Argv("")
	if err != nil {
		t.Fatalf("Argv returned error: %v", err)
	}
	want := []string{VendorInterpreter, payload, "-x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Argv = %q, want %q", got, want)
	}
}

func TestContext_ArgvMissingPayload(t *testing.T) {
	ctx, err := NewContext(nil, nil, Options{SelfDir: t.TempDir(), Exists: func(string) bool { return false }})
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}
	if _, err := ctx.Argv(""); !errors.Is(err, ErrPayload) {
		t.Fatalf("err = %v, want ErrPayload", err)
	}
}

func TestNewContext_InterpreterOverride(t *testing.T) {
	ctx, err := NewContext(nil, map[string]string{"FLATPAK_ID": "org.sil.Bloom"}, Options{
		SelfDir:     "/opt/bloom",
		Interpreter: "/usr/local/bin/mono",
	})
	if err != nil {
		t.Fatalf("NewContext returned error: %v", err)
	}
	if ctx.Interpreter != "/usr/local/bin/mono" {
		t.Fatalf("Interpreter = %q, want override", ctx.Interpreter)
	}
}
