package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nebolax/chatbench/internal/matrixfile"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a matrix file and re-validate it on every change",
	Long: `Watch the file given by --matrix and reload it whenever it changes.

Each reload validates the matrix and prints the new configuration count,
so an edited matrix file can be checked continuously while tuning a
benchmark run.

Example usage:
  chatbench watch --matrix bench.yaml`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if matrixPath == "" {
		return fmt.Errorf("watch requires --matrix")
	}

	reload := func() {
		m, err := matrixfile.Load(matrixPath)
		if err != nil {
			log.Printf("matrix invalid: %v", err)
			return
		}
		log.Printf("matrix ok: %d configurations", m.Size())
	}
	reload()

	w, err := matrixfile.NewWatcher(matrixPath)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Stop()

	fmt.Printf("Watching %s\n", matrixPath)
	fmt.Println("Press Ctrl+C to stop...")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nStopping watcher...")
			return nil
		case path, ok := <-w.Events():
			if !ok {
				return nil
			}
			log.Printf("changed: %s", path)
			reload()
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}
