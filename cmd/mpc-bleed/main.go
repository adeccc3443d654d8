package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ironsheep/mpc-bleed/internal/batch"
	"github.com/ironsheep/mpc-bleed/internal/bleed"
	"github.com/ironsheep/mpc-bleed/internal/demo"
	"github.com/ironsheep/mpc-bleed/internal/term"
	"github.com/ironsheep/mpc-bleed/internal/verify"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// errCancelled marks a run aborted by the user. The flow prints its own
// notice, so main exits non-zero without an extra error line.
var errCancelled = errors.New("operation cancelled by user")

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("mpc-bleed %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// Diagnostics go to stderr; the interactive flow owns stdout.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("MPC_BLEED_LOG_LEVEL") == "debug" {
		log.Printf("mpc-bleed v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	var err error
	args := os.Args[1:]
	switch {
	case len(args) > 0 && args[0] == "demo":
		err = runDemo(args[1:])
	case len(args) > 0 && args[0] == "verify":
		err = runVerify(args[1:])
	default:
		err = runBatch(args)
	}

	if err != nil {
		if !errors.Is(err, errCancelled) {
			fmt.Fprintf(os.Stderr, "mpc-bleed: %v\n", err)
		}
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("mpc-bleed - add print bleed margins to card images")
	fmt.Println()
	fmt.Println("Usage: mpc-bleed [command] [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  (none)     Process a folder of card images")
	fmt.Println("  demo       Generate a sample card and show both bleed styles")
	fmt.Println("  verify     Check processed images against their originals")
	fmt.Println("  version    Print version information")
	fmt.Println("  help       Print this help message")
	fmt.Println()
	fmt.Println("Processing options:")
	fmt.Println("  -in path       Folder with card images (prompted for when omitted)")
	fmt.Println("  -out path      Folder for processed images (prompted for when omitted)")
	fmt.Println("  -workers n     Process n images at a time (default 1)")
	fmt.Println("  -yes           Start without waiting for Enter")
	fmt.Println()
	fmt.Println("Demo options:")
	fmt.Println("  -dir path      Where to write the demo files (default demo-output)")
	fmt.Println()
	fmt.Println("Verify options:")
	fmt.Println("  -in path       Folder with the original images")
	fmt.Println("  -out path      Folder with the processed images")
	fmt.Println("  -tolerance t   Allowed per-pixel color distance (default 0.02)")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  MPC_BLEED_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Printf("Margins are computed from each image: %.2f%% of the height on the\n", bleed.VerticalPercent)
	fmt.Printf("top and bottom, %.2f%% of the width on the left and right.\n", bleed.HorizontalPercent)
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("mpc-bleed", flag.ExitOnError)
	inFlag := fs.String("in", "", "folder containing card images")
	outFlag := fs.String("out", "", "folder that receives processed images")
	workers := fs.Int("workers", 1, "number of images processed at once")
	yes := fs.Bool("yes", false, "start processing without waiting for Enter")
	fs.Parse(args)

	stdin := bufio.NewReader(os.Stdin)
	stdout := os.Stdout

	term.Banner(stdout, "MPC Bleed Tool - Add Print Bleed to Card Images",
		fmt.Sprintf("Extends card edges by %.2f%% top/bottom and %.2f%% left/right",
			bleed.VerticalPercent, bleed.HorizontalPercent))

	inputDir := *inFlag
	if inputDir == "" {
		var err error
		inputDir, err = term.PromptFolder(stdin, stdout, "Folder with your card images:", true)
		if err != nil {
			return cancelledOn(err)
		}
	} else if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
		return fmt.Errorf("input folder %s does not exist", inputDir)
	}

	outputDir := *outFlag
	if outputDir == "" {
		var err error
		outputDir, err = term.PromptFolder(stdin, stdout, "Folder for the processed images:", false)
		if err != nil {
			return cancelledOn(err)
		}
	}

	sp := term.NewSpinner(stdout, "Preparing output folder...")
	sp.Start()
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		sp.Fail("Could not create the output folder")
		return fmt.Errorf("failed to create output folder: %w", err)
	}
	sp.Stop(fmt.Sprintf("Output folder ready: %s", outputDir))

	sp = term.NewSpinner(stdout, "Scanning for images...")
	sp.Start()
	paths, err := batch.FindImages(inputDir)
	if err != nil {
		sp.Fail("Scan failed")
		return err
	}
	sp.Stop(fmt.Sprintf("Found %d images in %s", len(paths), inputDir))

	if len(paths) == 0 {
		term.Warn(stdout, "No image files found. Nothing to do.")
		return nil
	}

	fmt.Fprintln(stdout)
	term.Info(stdout, "Input:   %s", inputDir)
	term.Info(stdout, "Output:  %s", outputDir)
	term.Info(stdout, "Images:  %d", len(paths))
	if *workers > 1 {
		term.Info(stdout, "Workers: %d", *workers)
	}
	fmt.Fprintln(stdout)

	if !*yes {
		if err := term.Confirm(stdin, stdout, "Press Enter to start processing (Ctrl+C to cancel)..."); err != nil {
			return cancelledOn(err)
		}
		fmt.Fprintln(stdout)
	}

	// From here Ctrl+C stops dispatching new files; whatever is already
	// being processed finishes and stays on disk.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bar := term.NewProgressBar(stdout, len(paths))
	completed := 0
	var failures []batch.Result
	summary := batch.Run(ctx, paths, outputDir, batch.Options{
		Workers: *workers,
		OnResult: func(res batch.Result) {
			completed++
			bar.Update(completed, filepath.Base(res.Path))
			if res.Err != nil {
				failures = append(failures, res)
			}
		},
	})
	bar.Done()

	for _, f := range failures {
		term.Failure(stdout, "%s: %v", filepath.Base(f.Path), f.Err)
	}

	term.Success(stdout, "%d images processed into %s", summary.Succeeded, outputDir)
	if summary.Failed > 0 {
		term.Failure(stdout, "%d images failed", summary.Failed)
	}

	if ctx.Err() != nil {
		term.Warn(stdout, "Operation cancelled by user.")
		if summary.Skipped > 0 {
			term.Warn(stdout, "%d images were not processed.", summary.Skipped)
		}
		return errCancelled
	}
	return nil
}

func runDemo(args []string) error {
	fs := flag.NewFlagSet("mpc-bleed demo", flag.ExitOnError)
	dir := fs.String("dir", "demo-output", "folder for the demo files")
	fs.Parse(args)

	info, err := demo.Run(*dir)
	if err != nil {
		return err
	}

	stdout := os.Stdout
	term.Banner(stdout, "MPC Bleed Demo", "")
	term.Success(stdout, "Demo card:    %s (%dx%d)", info.CardPath, info.Width, info.Height)
	term.Success(stdout, "With bleed:   %s (%dx%d)", info.ExtendedPath, info.ExtendedWidth, info.ExtendedHeight)
	term.Success(stdout, "Solid border: %s (%dx%d)", info.SolidPath, info.ExtendedWidth, info.ExtendedHeight)
	fmt.Fprintln(stdout)
	term.Info(stdout, "Margins: %d px top/bottom, %d px left/right", info.Margins.Top, info.Margins.Left)
	term.Info(stdout, "Compare the outputs: edge extension continues the artwork into")
	term.Info(stdout, "the margin, the solid border leaves black bars at the cut line.")
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("mpc-bleed verify", flag.ExitOnError)
	inFlag := fs.String("in", "", "folder with the original images")
	outFlag := fs.String("out", "", "folder with the processed images")
	tolerance := fs.Float64("tolerance", verify.DefaultTolerance, "allowed per-pixel color distance")
	fs.Parse(args)

	if *inFlag == "" || *outFlag == "" {
		return errors.New("verify needs both -in and -out")
	}

	reports, err := verify.Dir(*inFlag, *outFlag, *tolerance)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		term.Warn(os.Stdout, "No image files found in %s.", *inFlag)
		return nil
	}

	failed := 0
	for _, r := range reports {
		if r.Passed {
			term.Success(os.Stdout, "%s", r.Original)
			continue
		}
		failed++
		for _, c := range r.Checks {
			if !c.Passed {
				term.Failure(os.Stdout, "%s: %s (%s)", r.Original, c.Name, c.Detail)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d images failed verification", failed, len(reports))
	}
	term.Success(os.Stdout, "All %d images verified.", len(reports))
	return nil
}

// cancelledOn maps an input EOF to a user cancellation; anything else
// passes through.
func cancelledOn(err error) error {
	if errors.Is(err, io.EOF) {
		return errCancelled
	}
	return err
}
