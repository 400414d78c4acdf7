package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proofdev/fitch"
	"github.com/proofdev/fitch/sequent"
)

var (
	proveJsonOutput bool
	outPath         string
)

var proveCmd = &cobra.Command{
	Use:   "prove [files...]",
	Short: "Search for proofs of the sequents in the given files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide sequent file paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		runWithTimeout(ctx, func() {
			if failed := runProveProcess(logger, args, proveJsonOutput, outPath); failed {
				os.Exit(1)
			}
		})
	},
}

func init() {
	proveCmd.Flags().BoolVar(&proveJsonOutput, "json", false, "Output results in JSON format")
	proveCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func runWithTimeout(ctx context.Context, f func()) {
	done := make(chan struct{})
	go func() {
		f()
		close(done)
	}()

	select {
	case <-ctx.Done():
		fmt.Println("Proof search timed out")
		os.Exit(1)
	case <-done:
		return
	}
}

type proveResult struct {
	Name    string   `json:"name"`
	Sequent string   `json:"sequent"`
	Status  string   `json:"status"`
	Proof   []string `json:"proof,omitempty"`
}

func runProveProcess(logger *zap.Logger, paths []string, isJson bool, jsonOutput string) bool {
	engine := fitch.New(fitch.WithLogger(logger))

	var results []proveResult
	failed := false

	for _, path := range paths {
		sequents, err := sequent.Load(path)
		if err != nil {
			logger.Error("Error loading sequent file", zap.String("file", path), zap.Error(err))
			fmt.Printf("error loading %s: %v\n", path, err)
			failed = true
			continue
		}

		bar := progressbar.NewOptions(len(sequents),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))

		for _, s := range sequents {
			results = append(results, proveSequent(engine, s))
			_ = bar.Add(1)
		}
		fmt.Println()
	}

	for _, result := range results {
		if result.Status != "proved" {
			failed = true
		}
	}

	printResults(logger, results, isJson, jsonOutput)
	return failed
}

func proveSequent(engine *fitch.Engine, s *sequent.Sequent) proveResult {
	result := proveResult{Name: s.Name}

	premises, conclusion, err := s.Formulas()
	if err != nil {
		result.Sequent = err.Error()
		result.Status = "malformed"
		return result
	}

	parts := make([]string, 0, len(premises))
	for _, premise := range premises {
		parts = append(parts, premise.String())
	}
	result.Sequent = strings.TrimSpace(strings.Join(parts, ", ") + " ⊢ " + conclusion.String())

	p, err := engine.Prove(premises, conclusion)
	switch {
	case errors.Is(err, fitch.ErrInvalidArgument):
		result.Status = "invalid"
	case errors.Is(err, fitch.ErrProofNotFound):
		result.Status = "not_found"
	case err != nil:
		result.Status = "error"
	default:
		result.Status = "proved"
		result.Proof = strings.Split(p.Render(), "\n")
	}
	return result
}

func printResults(logger *zap.Logger, results []proveResult, isJson bool, jsonOutput string) {
	if !isJson {
		// text output
		for _, result := range results {
			fmt.Printf("%s  %s  %s\n", verdict(result.Status), result.Name, result.Sequent)
			for _, line := range result.Proof {
				fmt.Println("  " + line)
			}
			if len(result.Proof) > 0 {
				fmt.Println()
			}
		}
		return
	}

	// JSON output
	d, err := json.Marshal(results)
	if err != nil {
		logger.Error("Error marshalling results to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	f, err := os.Create(jsonOutput)
	if err != nil {
		logger.Error("Error creating JSON output file", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}

func verdict(status string) string {
	switch status {
	case "proved":
		return color.GreenString("PROVED")
	case "invalid":
		return color.RedString("INVALID")
	case "not_found":
		return color.YellowString("NO PROOF")
	default:
		return color.RedString("ERROR")
	}
}
