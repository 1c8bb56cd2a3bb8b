package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	gitignore "github.com/monochromegane/go-gitignore"
)

// readSource loads the entire contents of one source into memory. Web URLs
// are fetched (HTML pages arrive converted to markdown text); anything else
// is read from disk.
func readSource(path string) ([]byte, error) {
	if isWebURL(path) {
		return fetchWebText(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}
	return data, nil
}

// isWebURL checks if the input string is an HTTP/HTTPS URL.
func isWebURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// isGitURL checks if the input string looks like a Git repository URL.
// Prioritizes the .git suffix or git@ prefix; plain https:// is ambiguous
// and treated as a web URL instead.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") || strings.HasPrefix(input, "git@")
}

// isDir reports whether the path names an existing directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// cloneGitRepo clones a Git repository URL into a temporary directory and
// returns the directory path. The caller removes the directory when done.
func cloneGitRepo(url string) (string, error) {
	tempDir, err := os.MkdirTemp("", "count-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Cloning '%s' into '%s'...\n", url, tempDir)

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository '%s': %w", url, err)
	}
	return tempDir, nil
}

// walkDirectory walks a directory tree and returns the paths of files to
// count, in walk order. Hidden entries are skipped unless --hidden, a root
// .gitignore is honored unless --no-ignore, and depth/size limits and
// include/exclude globs apply. When no include patterns are given and
// language definitions are loaded, only files of a known language are kept.
func walkDirectory(root string, langData *LoadedLanguageData) ([]string, error) {
	var paths []string
	var ignoreMatcher gitignore.IgnoreMatcher

	parsedIncludes := parsePatterns(includePatterns)
	parsedExcludes := parsePatterns(excludePatterns)
	hasExplicitIncludes := len(parsedIncludes) > 0

	if !noIgnore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not parse %s: %v\n", gitIgnorePath, err)
			} else {
				ignoreMatcher = matcher
			}
		}
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if path == root {
			return nil
		}

		baseName := d.Name()
		dir := d.IsDir()

		if !showHidden && isHidden(baseName) {
			if dir {
				return fs.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(root, path)
		if ignoreMatcher != nil && ignoreMatcher.Match(relPath, dir) {
			if dir {
				return fs.SkipDir
			}
			return nil
		}

		if maxDepth > 0 && countPathSeparators(relPath) >= maxDepth {
			if dir {
				return fs.SkipDir
			}
			return nil
		}

		excluded, err := matchesAnyPattern(baseName, parsedExcludes)
		if err != nil {
			return err
		}
		if excluded {
			if dir {
				return fs.SkipDir
			}
			return nil
		}
		if dir {
			return nil
		}

		keep := true
		if hasExplicitIncludes {
			keep, err = matchesAnyPattern(baseName, parsedIncludes)
			if err != nil {
				return err
			}
		} else if langData != nil {
			_, keep = langData.GetLanguageForFile(path)
		}
		if !keep {
			return nil
		}

		if maxSizeBytes > 0 {
			info, err := d.Info()
			if err != nil {
				return fmt.Errorf("could not stat %s: %w", path, err)
			}
			if info.Size() > maxSizeBytes {
				return nil
			}
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", root, err)
	}
	return paths, nil
}

// parsePatterns splits a comma-separated string of glob patterns.
func parsePatterns(patterns string) []string {
	if patterns == "" {
		return nil
	}
	return strings.Split(patterns, ",")
}

// matchesAnyPattern checks the name against each glob pattern.
func matchesAnyPattern(name string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := filepath.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// isHidden checks if a base name is hidden (starts with '.').
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > 0 && name[0] == '.'
}

// countPathSeparators counts separators in a slash-normalized relative path.
func countPathSeparators(path string) int {
	path = filepath.ToSlash(path)
	if path == "." || path == "" {
		return 0
	}
	return strings.Count(strings.Trim(path, "/"), "/")
}
