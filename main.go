package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"spacemerc/pkg/engine/input"
	"spacemerc/pkg/engine/logging"
	"spacemerc/pkg/game/app"
	"spacemerc/pkg/game/config"
	"spacemerc/pkg/game/devtools"
	"spacemerc/pkg/game/persist"
	"spacemerc/pkg/game/renderer"
	ebitenrenderer "spacemerc/pkg/game/renderer/ebiten"
	"spacemerc/pkg/game/renderer/tui"
	"spacemerc/pkg/game/state"
)

func main() {
	frontend := flag.String("frontend", "ebiten", "frontend to run: ebiten or tui")
	configPath := flag.String("config", "", "YAML file overriding the default tunables")
	dataDir := flag.String("data", defaultDataDir(), "directory for saved games, screenshots and the tui log")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "verbose development logging")
	locale := flag.String("locale", "locale", "directory holding gettext catalogues")
	lang := flag.String("lang", "en_GB", "catalogue language")
	devMission := flag.Bool("devmission", false, "start in the developer showcase mission")
	flag.Parse()

	if err := run(options{
		frontend:   *frontend,
		configPath: *configPath,
		dataDir:    *dataDir,
		seed:       *seed,
		debug:      *debug,
		locale:     *locale,
		lang:       *lang,
		devMission: *devMission,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	frontend   string
	configPath string
	dataDir    string
	seed       int64
	debug      bool
	locale     string
	lang       string
	devMission bool
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "spacemerc")
	}
	return ".spacemerc"
}

func run(opts options) error {
	if opts.frontend != "ebiten" && opts.frontend != "tui" {
		return fmt.Errorf("unknown frontend %q", opts.frontend)
	}
	if opts.frontend == "tui" && !input.IsTerminal() {
		return errors.New("the tui frontend needs an interactive terminal")
	}

	store, err := persist.NewFileStore(opts.dataDir)
	if err != nil {
		return err
	}

	// The tui owns the terminal, so its log goes to a file.
	logPath := ""
	if opts.frontend == "tui" {
		logPath = filepath.Join(opts.dataDir, "spacemerc.log")
	}
	log, err := logging.New(opts.debug, logPath)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer log.Sync()

	cfg := config.Default()
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}

	if info, err := os.Stat(opts.locale); err == nil && info.IsDir() {
		gotext.Configure(opts.locale, opts.lang, "default")
	}
	renderer.InitColors()

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting",
		zap.String("frontend", opts.frontend),
		zap.String("data", opts.dataDir),
		zap.Int64("seed", seed))

	s := state.NewSession(cfg, rand.New(rand.NewSource(seed)), log)
	saver := persist.Saver{Store: store}
	firstRun := saver.Restore(s)
	s.Persister = saver
	if opts.devMission {
		devtools.SwitchToDevMission(s, devtools.ShowcaseKinds...)
	}

	var vibrate func()
	a := app.New(s, firstRun, app.Options{
		Vibrate: func() {
			if vibrate != nil {
				vibrate()
			}
		},
		ScreenshotDir: opts.dataDir,
	})

	switch opts.frontend {
	case "tui":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		r := tui.New(a, cfg.Display, log)
		vibrate = r.Vibrate
		err = r.Run(ctx)
	default:
		var r *ebitenrenderer.EbitenRenderer
		if r, err = ebitenrenderer.NewEbitenRenderer(a, cfg.Display, log); err == nil {
			vibrate = r.Vibrate
			err = r.Run()
		}
	}

	if perr := saver.Persist(s); perr != nil {
		log.Warn("saving on exit failed", zap.Error(perr))
	}
	return err
}
