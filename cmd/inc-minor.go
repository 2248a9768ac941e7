package cmd

import (
	"context"

	"github.com/Thiht/go-bump/semver"
	"github.com/urfave/cli/v3"
)

func IncMinor() *cli.Command {
	return &cli.Command{
		Name:      "inc-minor",
		Usage:     "Increment the minor component of a version",
		ArgsUsage: "<version>",
		Flags:     []cli.Flag{repositoryFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runIncrement(ctx, cmd, semver.SemanticVersion.IncrementMinor)
		},
	}
}
