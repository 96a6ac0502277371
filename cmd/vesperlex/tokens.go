package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var (
	tokensJSON  bool
	tokensWatch bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream for a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]
		if err := dumpOnce(filename); err != nil {
			return err
		}
		if !tokensWatch {
			return nil
		}
		return watchAndDump(filename)
	},
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "print tokens as a JSON array")
	tokensCmd.Flags().BoolVar(&tokensWatch, "watch", false, "re-lex the file on every save")
}

func dumpOnce(filename string) error {
	id := runID()
	start := time.Now()

	buf, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	records := drainTokens(buf, filename)
	logDuration(id, filename, len(records), start)

	if tokensJSON {
		return writeTokensJSON(os.Stdout, records)
	}
	return writeTokensText(os.Stdout, records)
}

// watchAndDump re-lexes filename every time fsnotify reports a write to
// it, printing a fresh token dump per change. It runs until the watcher
// errors out or the process is killed.
func watchAndDump(filename string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("watching %s: %w", filename, err)
	}

	logger.Info("watching for changes", "file", filename)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := dumpOnce(filename); err != nil {
				logger.Error("re-lex failed", "file", filename, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
