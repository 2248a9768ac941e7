package gittag

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var ErrNoTags = errors.New("repository has no tags")

// Latest returns the name of the repository tag whose commit is the most
// recent. Tags are picked by commit time only, their names are never
// compared or ordered.
func Latest(path string) (string, error) {
	repository, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	tags, err := repository.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}

	var latest string
	var latestTime time.Time
	if err := tags.ForEach(func(ref *plumbing.Reference) error {
		commit, err := resolveCommit(repository, ref)
		if err != nil {
			return err
		}

		if latest == "" || commit.Committer.When.After(latestTime) {
			latest = ref.Name().Short()
			latestTime = commit.Committer.When
		}

		return nil
	}); err != nil {
		return "", err
	}

	if latest == "" {
		return "", ErrNoTags
	}

	return latest, nil
}

func resolveCommit(repository *git.Repository, ref *plumbing.Reference) (*object.Commit, error) {
	commit, err := repository.CommitObject(ref.Hash())
	if err == nil {
		return commit, nil
	}

	// Annotated tags point to a tag object instead of a commit
	tag, err := repository.TagObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tag %s: %w", ref.Name().Short(), err)
	}

	commit, err = tag.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve commit of tag %s: %w", ref.Name().Short(), err)
	}

	return commit, nil
}
