package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rustcst/parser/diag"
	"github.com/rustcst/parser/parser"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file> [file...]",
	Short: "Re-parse files on every write and print a diagnostic line per run",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if depth := resolveMaxDepth(maxDepth, cfg.MaxDepth); depth > 0 {
		parser.SetMaxDepth(depth)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dirs := map[string]bool{}
	for _, path := range args {
		dir := filepath.Dir(path)
		if !dirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
			dirs[dir] = true
		}
		watchReparse(path)
	}

	watched := map[string]bool{}
	for _, path := range args {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = true
	}

	var lastEvent time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			// Debounce: editors often emit several events per save.
			if time.Since(lastEvent) < 50*time.Millisecond {
				continue
			}
			lastEvent = time.Now()
			watchReparse(abs)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func watchReparse(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return
	}
	file, d := parser.Parse(source)
	if d != nil {
		fmt.Fprintf(os.Stderr, "%s: parse failed\n", path)
		fmt.Fprint(os.Stderr, diag.Render(source, *d))
		return
	}
	fmt.Printf("%s: ok, %d top-level items\n", path, len(file.Items))
}
