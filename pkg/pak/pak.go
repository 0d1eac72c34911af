// Package pak locates packaged chunk archives (pakchunk<N>-*.pak) produced
// by the packaging tool somewhere below a project directory.
package pak

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logging"
)

const (
	// Extension is the packaged archive file extension
	Extension = ".pak"

	// AnyChunkPattern matches a pak for any chunk
	AnyChunkPattern = "pakchunk*-*.pak"
)

// Pattern returns the base-name glob for the given chunk id. The id is an
// exact integer match: chunk 5 never matches pakchunk55-Windows.pak.
func Pattern(chunkID int) string {
	return fmt.Sprintf("pakchunk%d-*.pak", chunkID)
}

// FindAll walks root in lexical order and returns every file whose base
// name matches pattern. Unreadable directories are skipped.
func FindAll(root, pattern string) []string {
	logger := logging.GetLogger("pak")

	if root == "" {
		return nil
	}

	var found []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug().Err(err).Str("path", p).Msg("Skipping unreadable entry")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		matched, matchErr := filepath.Match(pattern, d.Name())
		if matchErr != nil {
			return matchErr
		}
		if matched {
			found = append(found, filepath.ToSlash(p))
		}
		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Str("root", root).Str("pattern", pattern).Msg("Pak search aborted")
	}

	logger.Debug().
		Str("root", root).
		Str("pattern", pattern).
		Int("matches", len(found)).
		Msg("Pak search complete")

	return found
}

// Choose applies the platform tie-break to a candidate list: the first
// candidate containing platformHint (case-sensitive) wins, otherwise the
// first candidate. The hint is a heuristic; when several platform builds
// share a tree it can pick the wrong one.
func Choose(candidates []string, platformHint string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	if platformHint != "" {
		for _, c := range candidates {
			if strings.Contains(c, platformHint) {
				return c, true
			}
		}
	}
	return candidates[0], true
}

// Locate finds the source pak for chunkID below root
func Locate(chunkID int, root, platformHint string) (string, bool) {
	if chunkID <= 0 {
		return "", false
	}
	return Choose(FindAll(root, Pattern(chunkID)), platformHint)
}

// FindAnyDir returns the directory of the first pak of any chunk below
// root, or "" when none exists.
func FindAnyDir(root string) string {
	found := FindAll(root, AnyChunkPattern)
	if len(found) == 0 {
		return ""
	}
	return path.Dir(found[0])
}
