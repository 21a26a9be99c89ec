package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/nebolax/chatbench/internal/bench"
	"github.com/nebolax/chatbench/internal/matrixfile"
)

var (
	matrixPath string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "chatbench",
	Short: "Configuration-space tooling for the chat messaging benchmark",
	Long: `chatbench enumerates, validates, and inspects the parameter space of a
concurrent chat messaging benchmark.

Each configuration is a point in a seven-axis space: worker threads, user
count, friend-list density, channel type, simulated work, benchmark mode,
and dispatcher type. Configurations are listed in a fixed deterministic
order so that result rows from separate runs always line up.

Example usage:
  chatbench matrix                       # List the default configuration space
  chatbench matrix --count               # Just print how many configurations
  chatbench matrix --format csv          # Machine-readable flat records
  chatbench parse 8,10000,0.2,BUFFERED_16,40,USER_WITH_FRIENDS,FORK_JOIN
  chatbench watch --matrix bench.yaml    # Re-validate a matrix file on change`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetPrefix("[chatbench] ")
		if logFile != "" {
			log.SetOutput(&lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
			})
		} else {
			log.SetOutput(os.Stderr)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&matrixPath, "matrix", "m", "", "Path to a matrix file (default: built-in reference matrix)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to a rotating file instead of stderr")
}

// loadMatrix resolves the active matrix: an explicit --matrix file wins,
// otherwise the built-in reference matrix (or the reduced quick matrix).
func loadMatrix(quick bool) (bench.Matrix, error) {
	if matrixPath != "" {
		return matrixfile.Load(matrixPath)
	}
	if quick {
		return bench.QuickMatrix(), nil
	}
	return bench.DefaultMatrix(), nil
}
