package dirscanner

import (
	"io/fs"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	gitignore "github.com/monochromegane/go-gitignore"
)

// Walker hands every regular file below root to visit.
type Walker interface {
	Walk(logger lager.Logger, root string, visit func(path string)) error
}

type walker struct {
	ignoreFile string
	skipDirs   map[string]struct{}
}

// NewWalker returns a Walker that skips directories named in skipDirs and,
// when ignoreFile is set, any path matched by the gitignore style file of
// that name at the top of each root.
func NewWalker(ignoreFile string, skipDirs []string) Walker {
	skip := make(map[string]struct{}, len(skipDirs))
	for _, dir := range skipDirs {
		skip[dir] = struct{}{}
	}

	return &walker{
		ignoreFile: ignoreFile,
		skipDirs:   skip,
	}
}

func (w *walker) Walk(logger lager.Logger, root string, visit func(string)) error {
	logger = logger.Session("walk", lager.Data{"root": root})
	logger.Debug("starting")
	defer logger.Debug("done")

	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		logger.Error("failed-to-resolve-root", err)
		return err
	}

	ignore := w.loadIgnore(logger, walkRoot)

	var result error

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("failed-to-walk", err, lager.Data{"path": path})
			result = multierror.Append(result, err)
			return nil
		}

		if d.IsDir() {
			if path == walkRoot {
				return nil
			}

			if _, skip := w.skipDirs[d.Name()]; skip {
				return filepath.SkipDir
			}

			if ignore != nil && ignore.Match(path, true) {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if ignore != nil && ignore.Match(path, false) {
			logger.Debug("ignored", lager.Data{"path": path})
			return nil
		}

		visit(underRoot(root, walkRoot, path))
		return nil
	})
	if err != nil {
		result = multierror.Append(result, err)
	}

	return result
}

// underRoot rewrites a path found below the resolved root so it reads as
// below the root the caller asked for.
func underRoot(root, walkRoot, path string) string {
	if root == walkRoot {
		return path
	}

	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}

	return filepath.Join(root, rel)
}

func (w *walker) loadIgnore(logger lager.Logger, root string) gitignore.IgnoreMatcher {
	if w.ignoreFile == "" {
		return nil
	}

	ignorePath := filepath.Join(root, w.ignoreFile)
	if _, err := os.Stat(ignorePath); err != nil {
		return nil
	}

	matcher, err := gitignore.NewGitIgnore(ignorePath, root)
	if err != nil {
		logger.Error("failed-to-load-ignore-file", err, lager.Data{"path": ignorePath})
		return nil
	}

	return matcher
}
