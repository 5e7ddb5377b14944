// Package main provides the CLI entry point for settleplot.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/settleplot-go/internal/config"
	"github.com/ukaji3/settleplot-go/internal/logger"
	"github.com/ukaji3/settleplot-go/pkg/settleplot"
)

var (
	dir        string
	configPath string
	noWait     bool
	verbose    bool
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "settleplot",
		Short: "Plot settlement monitoring workbooks to PDF",
		Long: `settleplot lists the .xlsx workbooks in a directory, asks which one to use
and renders one height/settlement chart per sheet into Plot_<name>.pdf.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(in, out)
		},
	}

	rootCmd.Flags().StringVar(&dir, "dir", ".", "Directory to scan for workbooks")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	rootCmd.Flags().BoolVar(&noWait, "no-wait", false, "Do not wait for Enter before exiting")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(in io.Reader, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New("settleplot", verbose)
	opts.Logger = log

	console := settleplot.NewConsole(in, out)
	pause := func() {
		if !noWait {
			console.Pause()
		}
	}

	files, err := settleplot.FindWorkbooks(dir, opts.Extension)
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		console.Printf("No %s files found in %s.\n", opts.Extension, describeDir(dir))
		pause()
		return nil
	}

	console.Menu(files)
	idx, err := console.Choose(len(files))
	if errors.Is(err, settleplot.ErrInvalidChoice) {
		console.Printf("Invalid choice. Exiting.\n")
		pause()
		return nil
	}
	if err != nil {
		return fmt.Errorf("read choice: %w", err)
	}

	selected := files[idx]
	console.Printf("\nSelected file: %s\n", selected)

	output := settleplot.OutputName(selected, opts.Prefix)
	report, err := settleplot.Plot(filepath.Join(dir, selected), filepath.Join(dir, output), opts)
	if err != nil {
		return err
	}
	log.Debugf("rendered sheets %v", report.Sheets)

	console.Printf("\nPDF saved as '%s'\n", output)
	pause()
	return nil
}

// describeDir names the scanned directory for user messages.
func describeDir(d string) string {
	if filepath.Clean(d) == "." {
		return "the current directory"
	}
	return d
}
