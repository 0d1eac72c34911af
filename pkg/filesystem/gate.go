package filesystem

import (
	"io"
	"path"
	"strings"

	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logging"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/paths"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// SafetyToken must appear in every path the gate lets through
const SafetyToken = "whiskerwood"

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Gate guards destructive filesystem operations
type Gate struct {
	fs    types.FS
	token string
}

// NewGate creates a gate over fsys. An empty token falls back to
// SafetyToken.
func NewGate(fsys types.FS, token string) *Gate {
	if token == "" {
		token = SafetyToken
	}
	return &Gate{fs: fsys, token: strings.ToLower(token)}
}

// FS returns the underlying filesystem
func (g *Gate) FS() types.FS {
	return g.fs
}

// IsWriteable normalizes p and reports whether the gate permits touching it
func (g *Gate) IsWriteable(p string) (bool, string) {
	normalized := paths.Normalize(p)
	if normalized == "" {
		return false, normalized
	}
	if !strings.Contains(strings.ToLower(normalized), g.token) {
		return false, normalized
	}
	return true, normalized
}

func (g *Gate) check(op, p string) (string, error) {
	ok, normalized := g.IsWriteable(p)
	if ok {
		return normalized, nil
	}

	logger := logging.GetLogger("filesystem")
	if normalized == "" {
		logger.Warn().Str("op", op).Msg("Refusing to operate on an empty destination path")
		return "", errors.New(errors.ErrUnsafePath, "refusing to operate on an empty destination path").
			WithDetail("op", op)
	}
	logger.Warn().
		Str("op", op).
		Str("path", normalized).
		Str("token", g.token).
		Msg("Refusing to operate on destination path without safety token")
	return "", errors.Newf(errors.ErrUnsafePath,
		"refusing to operate on '%s' because it does not contain '%s'", normalized, g.token).
		WithDetail("op", op).
		WithDetail("path", normalized)
}

// EnsureDir creates dir and its parents if they do not exist
func (g *Gate) EnsureDir(dir string) error {
	normalized, err := g.check("ensure-dir", dir)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("filesystem")
	if DirExists(g.fs, normalized) {
		logger.Trace().Str("path", normalized).Msg("Directory already exists")
		return nil
	}

	if err := g.fs.MkdirAll(normalized, dirPerm); err != nil {
		logger.Error().Err(err).Str("path", normalized).Msg("Failed to create directory tree")
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory '%s'", normalized)
	}
	logger.Info().Str("path", normalized).Msg("Created directory tree")
	return nil
}

// DeleteFile removes a single file
func (g *Gate) DeleteFile(file string) error {
	normalized, err := g.check("delete-file", file)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("filesystem")
	if !FileExists(g.fs, normalized) {
		logger.Warn().Str("path", normalized).Msg("File does not exist, cannot delete")
		return errors.Newf(errors.ErrFileNotFound, "file '%s' does not exist", normalized)
	}

	if err := g.fs.Remove(normalized); err != nil {
		logger.Error().Err(err).Str("path", normalized).Msg("Failed to delete file")
		return errors.Wrapf(err, errors.ErrFileDelete, "failed to delete '%s'", normalized)
	}
	logger.Info().Str("path", normalized).Msg("Deleted file")
	return nil
}

// DeleteDir removes a directory recursively
func (g *Gate) DeleteDir(dir string) error {
	normalized, err := g.check("delete-dir", dir)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("filesystem")
	if !DirExists(g.fs, normalized) {
		logger.Warn().Str("path", normalized).Msg("Directory does not exist, cannot delete")
		return errors.Newf(errors.ErrDirNotFound, "directory '%s' does not exist", normalized)
	}

	if err := g.fs.RemoveAll(normalized); err != nil {
		logger.Error().Err(err).Str("path", normalized).Msg("Failed to recursively delete directory")
		return errors.Wrapf(err, errors.ErrFileDelete, "failed to delete '%s'", normalized)
	}
	logger.Info().Str("path", normalized).Msg("Recursively deleted directory")
	return nil
}

// WriteFile writes data to file, creating parent directories through the
// gate. With overwrite false an existing file is an error.
func (g *Gate) WriteFile(file string, data []byte, overwrite bool) error {
	normalized, err := g.check("write-file", file)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("filesystem")
	if !overwrite && FileExists(g.fs, normalized) {
		logger.Warn().Str("path", normalized).Msg("File already exists and overwrite is disabled")
		return errors.Newf(errors.ErrFileWrite, "file '%s' already exists", normalized)
	}

	if dir := path.Dir(normalized); dir != "" && dir != "." {
		if err := g.EnsureDir(dir); err != nil {
			return err
		}
	}

	if err := g.fs.WriteFile(normalized, data, filePerm); err != nil {
		logger.Error().Err(err).Str("path", normalized).Msg("Failed to write file")
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write '%s'", normalized)
	}
	logger.Info().Str("path", normalized).Int("bytes", len(data)).Msg("Wrote file")
	return nil
}

// CopyFile copies src to dst. Only dst goes through the gate.
func (g *Gate) CopyFile(src, dst string, overwrite bool) error {
	logger := logging.GetLogger("filesystem")

	source := paths.Normalize(src)
	if source == "" {
		logger.Warn().Msg("Source file path is empty, cannot copy")
		return errors.New(errors.ErrInvalidInput, "source file path is empty")
	}
	if !FileExists(g.fs, source) {
		logger.Warn().Str("source", source).Msg("Source file does not exist, cannot copy")
		return errors.Newf(errors.ErrFileNotFound, "source file '%s' does not exist", source)
	}

	dest, err := g.check("copy", dst)
	if err != nil {
		return err
	}

	if !overwrite && FileExists(g.fs, dest) {
		logger.Warn().Str("dest", dest).Msg("Destination file already exists and overwrite is disabled")
		return errors.Newf(errors.ErrFileCopy, "destination '%s' already exists", dest)
	}

	if dir := path.Dir(dest); dir != "" && dir != "." {
		if err := g.EnsureDir(dir); err != nil {
			return err
		}
	}

	if err := g.copy(source, dest); err != nil {
		logger.Error().Err(err).Str("source", source).Str("dest", dest).Msg("Failed to copy file")
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to copy '%s' to '%s'", source, dest)
	}
	logger.Info().Str("source", source).Str("dest", dest).Msg("Copied file")
	return nil
}

func (g *Gate) copy(src, dst string) error {
	in, err := g.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := g.fs.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
