package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/inamate/pattern-engine/internal/config"
	"github.com/inamate/pattern-engine/internal/engine"
)

func main() {
	sample := flag.Bool("sample", false, "use the built-in sample pattern instead of a file")
	settingsPath := flag.String("settings", "", "optional settings JSON file")
	watch := flag.Bool("watch", false, "reload and report again whenever the document file changes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	settings, err := cfg.Settings()
	if err != nil {
		slog.Error("build settings", "error", err)
		os.Exit(1)
	}
	eng := engine.NewEngineWithSettings(settings)

	if *settingsPath != "" {
		data, err := os.ReadFile(*settingsPath)
		if err != nil {
			slog.Error("read settings", "path", *settingsPath, "error", err)
			os.Exit(1)
		}
		if err := eng.LoadSettings(data); err != nil {
			os.Exit(1)
		}
	}

	switch {
	case *sample:
		eng.LoadSampleDocument()
		report(eng)
		return
	case flag.NArg() != 1:
		slog.Error("usage: patterninfo [-settings FILE] (-sample | [-watch] DOCUMENT)")
		os.Exit(2)
	}

	path := filepath.Clean(flag.Arg(0))
	if err := loadFile(eng, path); err != nil {
		os.Exit(1)
	}
	report(eng)

	if *watch {
		if err := watchFile(eng, path); err != nil {
			slog.Error("watch document", "path", path, "error", err)
			os.Exit(1)
		}
	}
}

func loadFile(eng *engine.Engine, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("read document", "path", path, "error", err)
		return err
	}
	if err := eng.LoadDocument(data); err != nil {
		slog.Error("load document", "path", path, "error", err)
		return err
	}
	return nil
}

// watchFile watches the document's directory, since editors often replace
// files by rename rather than writing in place.
func watchFile(eng *engine.Engine, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	slog.Info("watching document", "path", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := loadFile(eng, path); err != nil {
				continue
			}
			report(eng)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		}
	}
}

func report(eng *engine.Engine) {
	stats := eng.UpdateDrawSequence()
	view := eng.Settings().ParsedView()

	slog.Info("pattern",
		"view", view.String(),
		"blocks", eng.NumBlocks(),
		"inserts", eng.NumInserts(),
		"entities", eng.NumEntities(),
		"layers", eng.Layers(),
	)
	for _, name := range eng.BlockNames() {
		box := eng.Pattern().PlacedBoundingBox(name, view)
		w, h := box.Size()
		slog.Info("block",
			"name", name,
			"offset", eng.Pattern().PlacementOffset(name),
			"center", box.Center(),
			"width", w,
			"height", h,
		)
	}
	slog.Info("draw sequence",
		"entities", stats.Entities,
		"vertices", len(eng.VertexBuffer())/engine.VertexStride,
		"indices", len(eng.IndexBuffer()),
		"extent_min", []float32{stats.Extent.X.Min, stats.Extent.Y.Min},
		"extent_max", []float32{stats.Extent.X.Max, stats.Extent.Y.Max},
	)
}
