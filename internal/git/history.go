package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/logging"
)

// ErrNotARepository is returned when the target path is not a git working
// copy. It is fatal for a history scan; there is no partial result to give.
var ErrNotARepository = errors.New("not a git repository")

// Options bounds a history walk.
type Options struct {
	// MaxCommits caps how many commits are visited, most recent first.
	// Zero means unlimited.
	MaxCommits int
	// Branch is the revision commits are enumerated from. Empty means HEAD.
	Branch string
	// SkipPath, when set, suppresses changes whose post-change path matches.
	SkipPath func(path string) bool
}

// Change is one changed file within one commit, reduced to its typed diff
// lines against the commit's first parent.
type Change struct {
	Path   string
	Commit string
	Lines  []DiffLine
}

// Walk visits commits reachable from opts.Branch, newest first, and invokes
// fn once per changed text file that has added lines. Binary changes and
// skipped paths are filtered out. Per-commit diff failures are non-fatal:
// the commit is logged and skipped. Walk returns the number of commits
// visited. fn returning an error aborts the walk.
func Walk(ctx context.Context, repoPath string, opts Options, fn func(Change) error) (int, error) {
	repo, err := gogit.PlainOpenWithOptions(repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return 0, fmt.Errorf("%w: %s", ErrNotARepository, repoPath)
		}
		return 0, fmt.Errorf("open repository %s: %w", repoPath, err)
	}

	branch := opts.Branch
	if branch == "" {
		branch = "HEAD"
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(branch))
	if err != nil {
		return 0, fmt.Errorf("resolve revision %q: %w", branch, err)
	}

	iter, err := repo.Log(&gogit.LogOptions{From: *hash})
	if err != nil {
		return 0, fmt.Errorf("enumerate commits from %q: %w", branch, err)
	}
	defer iter.Close()

	commits := 0
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.MaxCommits > 0 && commits >= opts.MaxCommits {
			return storer.ErrStop
		}
		commits++

		changes, err := commitChanges(ctx, c)
		if err != nil {
			logging.L().Warnw("skipping commit", "commit", c.Hash.String(), "error", err)
			return nil
		}
		for _, ch := range changes {
			if opts.SkipPath != nil && opts.SkipPath(ch.Path) {
				continue
			}
			if err := fn(ch); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return commits, err
	}
	return commits, nil
}

// commitChanges diffs c against its first parent (or the empty tree for a
// root commit) and returns the per-file added-line changes.
func commitChanges(ctx context.Context, c *object.Commit) ([]Change, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, fmt.Errorf("commit tree: %w", err)
	}
	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("first parent: %w", err)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, fmt.Errorf("parent tree: %w", err)
		}
	}

	treeChanges, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("diff trees: %w", err)
	}
	patch, err := treeChanges.PatchContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute patch: %w", err)
	}

	var out []Change
	for _, fp := range patch.FilePatches() {
		if fp.IsBinary() {
			continue
		}
		from, to := fp.Files()
		path := ""
		if to != nil {
			path = to.Path()
		} else if from != nil {
			path = from.Path()
		}
		if path == "" {
			continue
		}
		lines := parseChunks(fp.Chunks())
		hasAdded := false
		for _, l := range lines {
			if l.Kind == Added {
				hasAdded = true
				break
			}
		}
		if !hasAdded {
			continue
		}
		out = append(out, Change{Path: path, Commit: c.Hash.String(), Lines: lines})
	}
	return out, nil
}
