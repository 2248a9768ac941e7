package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Thiht/go-bump/gittag"
	"github.com/Thiht/go-bump/semver"
	"github.com/urfave/cli/v3"
)

func repositoryFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "repository",
		Aliases: []string{"C"},
		Usage:   "Read the version from the most recent tag of a local git repository instead of an argument",
	}
}

func runIncrement(ctx context.Context, cmd *cli.Command, increment func(semver.SemanticVersion) (semver.SemanticVersion, error)) error {
	version := cmd.Args().First()
	repository := cmd.String("repository")

	switch {
	case version != "" && repository != "":
		return errors.New("a version argument and --repository are mutually exclusive")

	case repository != "":
		tag, err := gittag.Latest(repository)
		if err != nil {
			return fmt.Errorf("failed to resolve version from repository: %w", err)
		}

		slog.DebugContext(ctx, "resolved version from repository", slog.String("repository", repository), slog.String("tag", tag))
		version = tag

	case version == "":
		return errors.New("missing version argument")
	}

	parsed, err := semver.Parse(version)
	if err != nil {
		return fmt.Errorf("failed to parse version: %w", err)
	}

	incremented, err := increment(parsed)
	if err != nil {
		return fmt.Errorf("failed to increment version: %w", err)
	}

	fmt.Fprintln(cmd.Root().Writer, incremented)

	return nil
}
