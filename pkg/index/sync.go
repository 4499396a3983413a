// pkg/index/sync.go
package index

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"
)

// depsDir is the directory inside the registry repository holding the
// <name>/index.toml entries. Repositories without it are used from the root.
const depsDir = "deps"

// Options configures Sync
type Options struct {
	URL    string // Repository to clone
	Branch string // Branch to check out; empty uses the remote HEAD
	Dest   string // Registry directory to replace
	Logger *zap.Logger
}

// Sync shallow-clones the registry repository and replaces Dest with its
// dependency entries. Dest is left untouched when the clone fails.
func Sync(opts Options) error {
	if opts.URL == "" {
		return fmt.Errorf("sync: no registry URL configured")
	}
	if opts.Dest == "" {
		return fmt.Errorf("sync: no registry path configured")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tempDir, err := os.MkdirTemp("", "fplan-clone-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	logger.Info("updating dependency registry", zap.String("url", opts.URL))

	cloneOpts := &git.CloneOptions{
		URL:          opts.URL,
		SingleBranch: true,
		Depth:        1,
	}
	if opts.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
	}
	if _, err := git.PlainClone(tempDir, false, cloneOpts); err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}

	src := filepath.Join(tempDir, depsDir)
	if _, err := os.Stat(src); err != nil {
		src = tempDir
	}

	staging := opts.Dest + ".new"
	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("clearing %s: %w", staging, err)
	}
	if err := copyDir(src, staging); err != nil {
		os.RemoveAll(staging)
		return fmt.Errorf("copying registry: %w", err)
	}
	if err := os.RemoveAll(opts.Dest); err != nil {
		return fmt.Errorf("removing old registry: %w", err)
	}
	if err := os.Rename(staging, opts.Dest); err != nil {
		return fmt.Errorf("installing registry: %w", err)
	}

	logger.Info("dependency registry updated", zap.String("path", opts.Dest))
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// copyDir copies src into dst, skipping git metadata
func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.Name() == ".git" {
			continue
		}
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}
