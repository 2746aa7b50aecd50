package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/five82/bloomsplash/internal/config"
	"github.com/five82/bloomsplash/internal/environ"
	"github.com/five82/bloomsplash/internal/launch"
	"github.com/five82/bloomsplash/internal/logging"
	"github.com/five82/bloomsplash/internal/logtail"
	"github.com/five82/bloomsplash/internal/sentinel"
	"github.com/five82/bloomsplash/internal/splash"
	"github.com/five82/bloomsplash/internal/splashimage"
	"github.com/five82/bloomsplash/internal/state"
	"github.com/five82/bloomsplash/internal/supervisor"
	"github.com/five82/bloomsplash/internal/window"
)

// Options configure a launch. Zero values use the real process state.
type Options struct {
	Args       []string          // argv as received, argv[0] included
	Env        map[string]string // nil snapshots os.Environ
	ConfigPath string            // empty uses BLOOM_SPLASH_CONFIG or the default
	SelfDir    string            // empty resolves from the executable
	Exists     func(string) bool
	Windows    window.Registry
	Store      *state.Store // shared with surfaces that render progress
	Stderr     io.Writer
	IsTerminal func() bool // reports whether stderr is a TTY
}

// Run launches Bloom behind a splash and blocks until the splash ends.
// Every way the splash can end is a success; only setup failures are errors.
func Run(ctx context.Context, opts Options) error {
	env := opts.Env
	if env == nil {
		env = environ.Current()
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	// Shared by the logger and the child log tail.
	stderr := logging.Locked(opts.Stderr)
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.PathFromEnv(env)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	launchCtx, err := launch.NewContext(opts.Args, env, launch.Options{
		SelfDir:     opts.SelfDir,
		Interpreter: cfg.Interpreter,
		Exists:      opts.Exists,
		Debug:       logging.Truthy(env[logging.DebugVar]),
	})
	if err != nil {
		return err
	}

	logger, closeLog := logging.New(logging.Options{
		Debug:    launchCtx.Debug,
		LogPath:  cfg.DebugLog,
		Stderr:   stderr,
		LaunchID: launchCtx.ID,
	})
	defer closeLog()
	fail := func(err error) error {
		logger.Debug("setup failed", zap.Error(err))
		return err
	}

	logger.Debug("launch context",
		zap.String("self", launchCtx.SelfDir),
		zap.String("interpreter", launchCtx.Interpreter),
		zap.String("backend", cfg.Backend),
	)

	marker, err := sentinel.Create(cfg.Sentinel)
	if err != nil {
		return fail(err)
	}
	defer marker.Remove()

	img, err := splashimage.Load(splashimage.Resolve(launchCtx.SelfDir, cfg.Image))
	if err != nil {
		return fail(err)
	}

	argv, err := launchCtx.Argv(cfg.Payload)
	if err != nil {
		return fail(err)
	}
	childEnv := environ.Build(launchCtx.SelfDir, launchCtx.Env())

	isTerminal := opts.IsTerminal
	if isTerminal == nil {
		isTerminal = func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }
	}
	display := window.DetectDisplay(env, isTerminal())
	surface, backend, err := opts.Windows.Open(cfg.Backend, display, img, logger.Named("window"))
	if err != nil {
		return fail(err)
	}
	logger.Debug("splash window ready", zap.String("backend", backend), zap.Int("width", img.Width), zap.Int("height", img.Height))

	spawnOpts := supervisor.Options{Logger: logger.Named("supervisor")}
	if cfg.ChildLog != "" {
		childLog, err := os.OpenFile(cfg.ChildLog, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return fail(fmt.Errorf("open child log: %w", err))
		}
		// The child keeps its own descriptor once started.
		defer childLog.Close()
		spawnOpts.Stdout = childLog
		spawnOpts.Stderr = childLog
	}

	child, err := supervisor.Spawn(argv, childEnv.List(), spawnOpts)
	if err != nil {
		return fail(err)
	}
	store.Start(child.Pid(), cfg.TimeoutTicks)

	loopCtx, stop := context.WithCancel(ctx)
	defer stop()

	events := make(chan splash.Event)
	splash.StartTicker(loopCtx, events, cfg.TickInterval)
	child.Watch(func(exit supervisor.Exit) {
		if cfg.ChildLog != "" && exit.Code != 0 {
			_ = logtail.Dump(stderr, cfg.ChildLog, "bloom: ", logtail.DefaultLines)
		}
		splash.Post(loopCtx, events, splash.ChildExited)
	})

	loop := &splash.Loop{
		MaxTicks: cfg.TimeoutTicks,
		Pending:  marker.Present,
		Store:    store,
		Logger:   logger.Named("splash"),
	}
	done := make(chan splash.Reason, 1)
	go func() {
		done <- loop.Run(loopCtx, events)
		stop()
	}()

	// Window toolkits want the calling goroutine; the loop runs beside it.
	if err := surface.Run(loopCtx, func() {
		splash.Post(loopCtx, events, splash.CloseRequested)
	}); err != nil {
		logger.Warn("splash window failed", zap.String("backend", backend), zap.Error(err))
	}

	<-done
	return nil
}
