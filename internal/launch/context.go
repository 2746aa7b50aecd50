package launch

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Context is everything resolved once at startup. It is never mutated after
// NewContext returns; accessors hand out copies.
type Context struct {
	ID          string
	SelfDir     string
	Interpreter string
	Debug       bool

	args []string
	env  map[string]string
}

// Options tune NewContext. Zero values use the real process state.
type Options struct {
	SelfDir     string            // empty resolves via os.Executable
	Interpreter string            // empty picks a mono install by precedence
	Exists      func(string) bool // filesystem probe for interpreter selection
	Debug       bool
}

// NewContext resolves the launcher directory and interpreter for args and env.
func NewContext(args []string, env map[string]string, opts Options) (Context, error) {
	selfDir := opts.SelfDir
	if selfDir == "" {
		dir, err := ResolveSelfDirectory()
		if err != nil {
			return Context{}, err
		}
		selfDir = dir
	}

	interpreter := opts.Interpreter
	if interpreter == "" {
		interpreter = ResolveInterpreter(env, opts.Exists)
	}

	ctx := Context{
		ID:          uuid.NewString(),
		SelfDir:     selfDir,
		Interpreter: interpreter,
		Debug:       opts.Debug,
		args:        slices.Clone(args),
		env:         maps.Clone(env),
	}
	if ctx.env == nil {
		ctx.env = map[string]string{}
	}
	return ctx, nil
}

// Args returns a copy of the arguments the launcher received, argv[0] included.
func (c Context) Args() []string {
	return slices.Clone(c.args)
}

// Env returns a copy of the environment snapshot taken at startup.
func (c Context) Env() map[string]string {
	return maps.Clone(c.env)
}

// Argv resolves the payload and returns the child argument vector.
func (c Context) Argv(payloadName string) ([]string, error) {
	payload, err := ResolvePayload(c.SelfDir, payloadName)
	if err != nil {
		return nil, err
	}
	argv, err := BuildArgumentVector(c.Interpreter, payload, c.args)
	if err != nil {
		return nil, fmt.Errorf("launch %s: %w", c.ID, err)
	}
	return argv, nil
}
