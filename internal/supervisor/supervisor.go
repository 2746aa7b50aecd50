package supervisor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Options control how the child is started.
type Options struct {
	Stdout io.Writer // nil inherits the launcher's stdout
	Stderr io.Writer // nil inherits the launcher's stderr
	Logger *zap.Logger
}

// Exit describes how the child ended. Only the fact that it ended matters to
// the splash; the code is kept for the logs.
type Exit struct {
	Code     int // -1 when the child did not exit normally
	Err      error
	Duration time.Duration
}

// Child is a spawned payload process. It is never killed by the launcher.
type Child struct {
	cmd    *exec.Cmd
	start  time.Time
	logger *zap.Logger

	done chan struct{}
	exit Exit

	watchOnce sync.Once
}

// Spawn starts argv with env without waiting for it.
func Spawn(argv, env []string, opts Options) (*Child, error) {
	if len(argv) == 0 {
		return nil, errors.New("spawn: empty argument vector")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = env
	cmd.Stdin = nil
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	logger.Debug("spawning child", zap.Strings("argv", argv), zap.Int("env", len(env)))
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", argv[0], err)
	}

	child := &Child{
		cmd:    cmd,
		start:  time.Now(),
		logger: logger.With(zap.Int("pid", cmd.Process.Pid)),
		done:   make(chan struct{}),
	}
	child.logger.Info("child started")

	go child.wait()

	return child, nil
}

func (c *Child) wait() {
	err := c.cmd.Wait()

	exit := Exit{Code: 0, Duration: time.Since(c.start)}
	if err != nil {
		exit.Err = err
		exit.Code = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exit.Code = exitErr.ExitCode()
		}
	}
	c.exit = exit
	c.logger.Info("child exited", zap.Int("code", exit.Code), zap.Duration("after", exit.Duration))
	close(c.done)
}

// Pid returns the child's process id.
func (c *Child) Pid() int {
	return c.cmd.Process.Pid
}

// Done is closed once the child has terminated.
func (c *Child) Done() <-chan struct{} {
	return c.done
}

// Exit returns the exit record. It is only meaningful after Done is closed.
func (c *Child) Exit() Exit {
	select {
	case <-c.done:
		return c.exit
	default:
		return Exit{Code: -1}
	}
}

// Watch registers onExit to run once when the child terminates. Only the first
// registration takes effect; later calls are ignored.
func (c *Child) Watch(onExit func(Exit)) {
	c.watchOnce.Do(func() {
		go func() {
			<-c.done
			onExit(c.exit)
		}()
	})
}
