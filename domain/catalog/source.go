package catalog

import (
	"context"
	"encoding/binary"
	"fmt"
	"io/fs"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dchest/siphash"
)

// Source is where catalog assets live. Paths are slash-separated and
// relative to the media root.
type Source interface {
	// Enumerate returns the paths matching a doublestar pattern, sorted.
	Enumerate(ctx context.Context, pattern string) ([]string, error)
	// Resolve turns a path into a URL the browser can load.
	Resolve(ctx context.Context, p string) (string, error)
	// Check reports whether the source is usable.
	Check(ctx context.Context) error
	Name() string
}

// fingerprint keys; changing them invalidates every cached asset URL.
const (
	fpKey0 = 0x7a632d6d6574616c
	fpKey1 = 0x6d656469612d7631
)

// FSSource serves assets from a filesystem mounted under URLPrefix.
type FSSource struct {
	fsys      fs.FS
	urlPrefix string
}

// NewFSSource returns a source over fsys whose URLs start with urlPrefix,
// e.g. "/media".
func NewFSSource(fsys fs.FS, urlPrefix string) *FSSource {
	return &FSSource{fsys: fsys, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

func (s *FSSource) Name() string { return "fs" }

func (s *FSSource) Enumerate(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	matches, err := doublestar.Glob(s.fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Resolve returns a URL with a ?v= fingerprint of the file's size and
// modification time, so browsers refetch replaced media.
func (s *FSSource) Resolve(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	info, err := fs.Stat(s.fsys, p)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", p, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("resolve %q: is a directory", p)
	}
	return s.urlFor(p) + "?v=" + fingerprint(p, info), nil
}

func (s *FSSource) urlFor(p string) string {
	segs := strings.Split(strings.TrimPrefix(p, "/"), "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return s.urlPrefix + "/" + strings.Join(segs, "/")
}

func (s *FSSource) Check(ctx context.Context) error {
	if _, err := fs.Stat(s.fsys, "."); err != nil {
		return fmt.Errorf("media root: %w", err)
	}
	return nil
}

func fingerprint(p string, info fs.FileInfo) string {
	buf := make([]byte, 0, len(p)+16)
	buf = append(buf, p...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(info.Size()))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(info.ModTime().UnixNano()))
	return strconv.FormatUint(siphash.Hash(fpKey0, fpKey1, buf), 36)
}

// staticBase is the longest leading run of pattern segments without
// wildcards, e.g. "gallery/gate" for "gallery/gate/*.jpg".
func staticBase(pattern string) string {
	base, _ := doublestar.SplitPattern(pattern)
	if base == "." {
		return ""
	}
	return base
}
