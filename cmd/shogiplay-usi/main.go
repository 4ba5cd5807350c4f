package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/hailam/shogiplay/internal/board"
	"github.com/hailam/shogiplay/internal/perft"
	"github.com/hailam/shogiplay/internal/storage"
	"github.com/hailam/shogiplay/internal/usi"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	backend    = flag.String("backend", "magic", "slider attack backend: ray, magic or pext")
	tables     = flag.String("tables", "", "magic table file (default: data dir, if present)")
	dbDir      = flag.String("db", "", "perft record database directory (default: data dir)")
	noDB       = flag.Bool("nodb", false, "do not open the perft record database")
	threads    = flag.Int("threads", 0, "perft worker goroutines (0 = GOMAXPROCS)")
	cacheSize  = flag.Int64("cache", perft.DefaultOptions().CacheEntries, "perft cache entries (0 disables)")
	verbosity  = flag.Int("v", 0, "log verbosity")
)

func main() {
	flag.Parse()

	// Logs go to stderr; stdout carries the protocol.
	stdr.SetVerbosity(*verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		logger.Info("CPU profiling enabled", "path", profilePath)
	}

	if err := setupBackend(logger); err != nil {
		log.Fatal(err)
	}

	opts := usi.Options{Logger: logger}

	if !*noDB {
		store, err := openStore(logger)
		if err != nil {
			logger.Error(err, "perft records disabled")
		} else {
			defer store.Close()
			opts.Store = store
		}
	}

	runner, err := perft.NewRunner(perft.Options{
		Workers:      *threads,
		CacheEntries: *cacheSize,
		Logger:       logger.WithName("perft"),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer runner.Close()
	opts.Perft = runner

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := usi.New(os.Stdout, opts).Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logger.Error(err, "protocol loop stopped")
	}
}

// setupBackend selects the slider backend and, for magic, loads the table
// file when one is available. Without one the built-in multipliers are used.
func setupBackend(logger logr.Logger) error {
	b, err := board.ParseBackend(*backend)
	if err != nil {
		return err
	}
	if err := board.SelectBackend(b); err != nil {
		return err
	}
	if b != board.BackendMagic {
		return nil
	}

	path := *tables
	explicit := path != ""
	if !explicit {
		if path, err = storage.GetTablesPath(); err != nil {
			return nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if explicit {
			return err
		}
		logger.V(1).Info("no magic table file, using built-in multipliers", "path", path)
		return nil
	}
	defer f.Close()

	if err := board.LoadMagics(f); err != nil {
		return err
	}
	logger.Info("magic tables loaded", "path", path)
	return nil
}

func openStore(logger logr.Logger) (*storage.Store, error) {
	var (
		store *storage.Store
		err   error
	)
	if *dbDir != "" {
		store, err = storage.Open(*dbDir)
	} else {
		store, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}

	first, err := store.IsFirstLaunch()
	if err != nil {
		logger.Error(err, "reading launch state")
	} else if first {
		logger.Info("first launch, perft records start empty")
		if err := store.MarkFirstLaunchComplete(); err != nil {
			logger.Error(err, "saving launch state")
		}
	}
	return store, nil
}
