package main

import (
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// isGitURL reports whether the input looks like a git repository URL rather
// than a local pattern. Only unambiguous forms are recognized: a .git suffix
// or the git@ SSH shorthand.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") || strings.HasPrefix(input, "git@")
}

// cloneGitRepo clones url shallowly into a temporary directory and returns
// its path. The caller owns the directory and removes it when the run ends.
func cloneGitRepo(url string, log *logger) (string, error) {
	tempDir, err := os.MkdirTemp("", "filecat-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	log.Infof("Cloning %s into %s", url, tempDir)

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Depth:         1,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository %s: %w", url, err)
	}
	return tempDir, nil
}
