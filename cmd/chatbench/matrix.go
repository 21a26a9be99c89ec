package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/nebolax/chatbench/internal/bench"
	"github.com/nebolax/chatbench/internal/matrixfile"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "List the benchmark configuration space",
	Long: `Enumerate every configuration in the active matrix, in the fixed order
the benchmark harness runs them.

The matrix comes from --matrix if given, otherwise the built-in reference
matrix (or the reduced development matrix with --quick).

Formats:
  table  - Human-readable aligned listing (default)
  csv    - Flat records with the standard result header, one per line
  yaml   - The matrix axes themselves, reloadable via --matrix

Example usage:
  chatbench matrix
  chatbench matrix --count
  chatbench matrix --quick --format csv
  chatbench matrix --format yaml > bench.yaml`,
	RunE: runMatrix,
}

func init() {
	matrixCmd.Flags().Bool("count", false, "Print only the number of configurations")
	matrixCmd.Flags().Bool("quick", false, "Use the reduced development matrix when no --matrix file is given")
	matrixCmd.Flags().String("format", "table", "Output format: table, csv, or yaml")
	rootCmd.AddCommand(matrixCmd)
}

func runMatrix(cmd *cobra.Command, args []string) error {
	countOnly, _ := cmd.Flags().GetBool("count")
	quick, _ := cmd.Flags().GetBool("quick")
	format, _ := cmd.Flags().GetString("format")

	m, err := loadMatrix(quick)
	if err != nil {
		return err
	}

	if countOnly {
		fmt.Println(m.Size())
		return nil
	}

	switch format {
	case "table":
		printMatrixTable(m)
		return nil
	case "csv":
		fmt.Println(bench.RecordHeader())
		for _, c := range m.Generate() {
			fmt.Println(strings.Join(c.FlatRecord(), ","))
		}
		return nil
	case "yaml":
		out, err := yaml.Marshal(matrixfile.FromMatrix(m))
		if err != nil {
			return fmt.Errorf("encode matrix: %w", err)
		}
		fmt.Print(string(out))
		return nil
	default:
		return fmt.Errorf("unknown format %q (must be table, csv, or yaml)", format)
	}
}

var (
	tableTitleStyle  = lipgloss.NewStyle().Bold(true)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tableFaintStyle  = lipgloss.NewStyle().Faint(true)
)

func printMatrixTable(m bench.Matrix) {
	configs := m.Generate()

	width := 120
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	fmt.Println(tableTitleStyle.Render(fmt.Sprintf("%d configurations", len(configs))))
	fmt.Println(tableHeaderStyle.Render(fmt.Sprintf("%-5s %-8s %-8s %-8s %-13s %-5s %-21s %s",
		"#", "threads", "users", "friends", "channel", "work", "mode", "dispatcher")))

	for i, c := range configs {
		line := fmt.Sprintf("%-5d %-8d %-8d %-8s %-13s %-5d %-21s %s",
			i, c.Threads, c.Users, formatPercent(c.MaxFriendsPercentage),
			c.Channel, c.AverageWork, c.Mode, c.Dispatcher)
		if len(line) > width {
			line = line[:width]
		}
		if i%2 == 1 {
			line = tableFaintStyle.Render(line)
		}
		fmt.Println(line)
	}
}

func formatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}
