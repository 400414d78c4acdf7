package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-run proof search whenever a sequent file changes",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		if err := watchPaths(args); err != nil {
			log.Printf("error: %v", err)
			os.Exit(1)
		}
	},
}

func watchPaths(paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding path to watcher: %w", err)
		}
	}

	log.Printf("watching %s", strings.Join(paths, ", "))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleFileEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("error: %v", err)
		}
	}
}

func handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)
	log.Printf("change detected in %s", event.Name)
	runProveProcess(logger, []string{event.Name}, false, "")
}
