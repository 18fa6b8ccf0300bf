package catalog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/NeilHuang625/zcmetal/internal/storage"
)

// ObjectStore is the part of the storage service S3Source needs.
type ObjectStore interface {
	ListKeys(ctx context.Context, prefix string) ([]storage.Object, error)
	GetSignedDownloadURL(ctx context.Context, key string, opts storage.GetSignedDownloadURLOptions) (string, error)
	Ping(ctx context.Context) error
}

// S3Source lists assets from a bucket and resolves them to presigned URLs.
type S3Source struct {
	store  ObjectStore
	expiry time.Duration
}

func NewS3Source(store ObjectStore, expiry time.Duration) *S3Source {
	return &S3Source{store: store, expiry: expiry}
}

func (s *S3Source) Name() string { return "s3" }

// Enumerate lists the pattern's static prefix and filters keys locally.
func (s *S3Source) Enumerate(ctx context.Context, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	prefix := staticBase(pattern)
	if prefix != "" {
		prefix += "/"
	}
	objs, err := s.store.ListKeys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, o := range objs {
		if doublestar.MatchUnvalidated(pattern, o.Key) {
			out = append(out, o.Key)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *S3Source) Resolve(ctx context.Context, p string) (string, error) {
	u, err := s.store.GetSignedDownloadURL(ctx, p, storage.GetSignedDownloadURLOptions{ExpiresIn: s.expiry})
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", p, err)
	}
	return u, nil
}

func (s *S3Source) Check(ctx context.Context) error {
	return s.store.Ping(ctx)
}
