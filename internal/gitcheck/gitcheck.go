// Package gitcheck compares the repository settings of themeConfig with a
// local git checkout: the docs branch must exist, the docs directory must be
// present on it and the origin remote should point at the configured repo.
package gitcheck

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
)

// Finding is a theme setting that does not match the checkout.
type Finding struct {
	Field   string
	Message string
}

// Check opens the repository containing repoDir and reports mismatches with tc.
// The error return is reserved for a directory that is not inside a git repository.
func Check(repoDir string, tc config.ThemeConfig) ([]Finding, error) {
	repo, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open git repository %s: %w", repoDir, err)
	}

	var findings []Finding
	if tc.Repo != "" {
		if f, ok := checkOrigin(repo, tc.Repo); !ok {
			findings = append(findings, f)
		}
	}
	if tc.DocsBranch == "" {
		return findings, nil
	}

	ref, err := branchRef(repo, tc.DocsBranch)
	if err != nil {
		return append(findings, Finding{
			Field:   "themeConfig.docsBranch",
			Message: fmt.Sprintf("branch %q not found locally or on origin", tc.DocsBranch),
		}), nil
	}
	slog.Debug("Resolved docs branch", slog.String("branch", tc.DocsBranch), slog.String("hash", ref.Hash().String()))

	dir := path.Clean(strings.TrimPrefix(tc.DocsDir, "./"))
	if tc.DocsDir == "" || dir == "." {
		return findings, nil
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", ref.Hash(), err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("read tree of %s: %w", ref.Hash(), err)
	}
	if _, err := tree.Tree(dir); err != nil {
		if !errors.Is(err, object.ErrDirectoryNotFound) {
			return nil, fmt.Errorf("look up %s: %w", dir, err)
		}
		slog.Debug("Docs directory missing on branch", logfields.Path(dir), slog.String("branch", tc.DocsBranch))
		findings = append(findings, Finding{
			Field:   "themeConfig.docsDir",
			Message: fmt.Sprintf("directory %q not found on branch %s", dir, tc.DocsBranch),
		})
	}
	return findings, nil
}

// branchRef resolves a local branch, falling back to the origin tracking ref.
func branchRef(repo *git.Repository, branch string) (*plumbing.Reference, error) {
	ref, err := repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err == nil {
		return ref, nil
	}
	return repo.Reference(plumbing.NewRemoteReferenceName("origin", branch), true)
}

func checkOrigin(repo *git.Repository, configured string) (Finding, bool) {
	remote, err := repo.Remote("origin")
	if err != nil {
		// no origin, nothing to compare
		return Finding{}, true
	}
	want := Slug(configured)
	for _, u := range remote.Config().URLs {
		if Slug(u) == want {
			return Finding{}, true
		}
	}
	return Finding{
		Field:   "themeConfig.repo",
		Message: fmt.Sprintf("origin remote %s does not point at %s", strings.Join(remote.Config().URLs, ", "), configured),
	}, false
}

// Slug reduces a repository URL, scp-style address or owner/name shorthand
// to a lower-case "owner/name".
func Slug(repo string) string {
	s := strings.TrimSpace(repo)
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
		if j := strings.Index(s, "/"); j >= 0 {
			s = s[j+1:]
		}
	} else if i := strings.Index(s, ":"); i >= 0 {
		s = s[i+1:] // git@host:owner/name
	}
	s = strings.TrimSuffix(strings.Trim(s, "/"), ".git")
	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	return strings.ToLower(strings.Join(parts, "/"))
}
