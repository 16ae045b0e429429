// File: pkg/pack/execute.go
package pack

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Execute runs the whole packing process: it reads the entry file,
// establishes the project root, expands every inclusion directive and writes
// the merged result. Nothing is written when any step fails.
func Execute(args *Arguments, logger *zap.Logger) error {
	startTime := time.Now()

	entry, err := filepath.Abs(args.Entry)
	if err != nil {
		return fmt.Errorf("failed to resolve entry path: %w", err)
	}
	root := filepath.Dir(entry)

	output := args.Output
	if output == "" {
		output = "merged_" + filepath.Base(entry)
	}
	outputPath := filepath.Join(root, output)

	logger.Info("Starting pack process",
		zap.String("entry", entry),
		zap.String("output", outputPath))

	if _, err := os.Stat(outputPath); err == nil {
		confirmed, err := confirmOverwrite(os.Stdin, filepath.Base(outputPath))
		if err != nil {
			return fmt.Errorf("failed to read user input: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return ErrOverwriteDeclined
		}
	}

	text, err := readText(entry)
	if err != nil {
		return fmt.Errorf("failed to read entry file: %w", err)
	}

	expander := NewExpander(root, logger)
	result, err := expander.Expand(root, strings.Split(text, "\n"), 0)
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	if err := writeToFile(outputPath, []byte(strings.Join(result, "\n")), 0644, logger); err != nil {
		return fmt.Errorf("failed to write merged file: %w", err)
	}

	if args.Tree != "" {
		if err := writeToFile(args.Tree, []byte(expander.InclusionTree()), 0644, logger); err != nil {
			return fmt.Errorf("failed to write inclusion tree: %w", err)
		}
	}

	fmt.Println("Merged File Written.")
	logger.Info("Pack process completed",
		zap.String("outputFile", outputPath),
		zap.Int("totalLines", len(result)),
		zap.Int("expandedFiles", len(expander.visited)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// confirmOverwrite prompts before clobbering an existing output file. Only
// the exact response "Y" confirms; anything else declines.
func confirmOverwrite(in io.Reader, name string) (bool, error) {
	fmt.Printf("The output file %s already exists. OVERWRITE THIS? ARE YOU SURE? [Y/other] ", name)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSuffix(response, "\n")
	response = strings.TrimSuffix(response, "\r")
	return response == "Y", nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
