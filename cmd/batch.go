package cmd

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Thiht/go-bump/semver"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
)

func Batch() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Increment a component of every version listed in a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "part",
				Value: "patch",
				Usage: "Version component to increment (patch, minor or major)",
			},
			&cli.StringFlag{
				Name:     "input-file",
				Required: true,
				Usage:    "File containing one version per line",
			},
			&cli.StringFlag{
				Name:  "output-file",
				Usage: "CSV file to write the results to (defaults to stdout)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			part := cmd.String("part")
			increment, ok := incrementsByPart[part]
			if !ok {
				return fmt.Errorf("unknown part: %s", part)
			}

			inputFile := cmd.String("input-file")
			slog.DebugContext(ctx, "opening input file", slog.String("file", inputFile))
			inputFileHandler, err := os.Open(inputFile)
			if err != nil {
				return fmt.Errorf("failed to open input file: %w", err)
			}
			defer inputFileHandler.Close()

			slog.DebugContext(ctx, "reading input file", slog.String("file", inputFile))
			var versions []string
			scanner := bufio.NewScanner(inputFileHandler)
			for scanner.Scan() {
				version := strings.TrimSpace(scanner.Text())
				if version == "" {
					continue
				}

				versions = append(versions, version)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}

			output := cmd.Root().Writer
			var progress *progressbar.ProgressBar
			if outputFile := cmd.String("output-file"); outputFile != "" {
				slog.DebugContext(ctx, "opening output file", slog.String("file", outputFile))
				outputFileHandler, err := os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("failed to open output file: %w", err)
				}
				defer outputFileHandler.Close()

				bufferedWriter := bufio.NewWriter(outputFileHandler)
				defer bufferedWriter.Flush()

				output = bufferedWriter
				progress = progressbar.Default(int64(len(versions)))
			}

			csvWriter := csv.NewWriter(output)
			defer csvWriter.Flush()

			if err := csvWriter.Write([]string{"version", "next"}); err != nil {
				return fmt.Errorf("failed to write output header: %w", err)
			}

			for _, version := range versions {
				if progress != nil {
					if err := progress.Add(1); err != nil {
						slog.WarnContext(ctx, "failed to update progress bar", slog.Any("error", err))
					}
				}

				parsed, err := semver.Parse(version)
				if err != nil {
					slog.WarnContext(ctx, "skipping invalid version", slog.String("version", version), slog.Any("error", err))
					continue
				}

				incremented, err := increment(parsed)
				if err != nil {
					slog.WarnContext(ctx, "skipping version that cannot be incremented", slog.String("version", version), slog.Any("error", err))
					continue
				}

				if err := csvWriter.Write([]string{version, incremented.String()}); err != nil {
					return fmt.Errorf("failed to write result for %s: %w", version, err)
				}
			}

			return nil
		},
	}
}

var incrementsByPart = map[string]func(semver.SemanticVersion) (semver.SemanticVersion, error){
	"patch": semver.SemanticVersion.IncrementPatch,
	"minor": semver.SemanticVersion.IncrementMinor,
	"major": semver.SemanticVersion.IncrementMajor,
}
