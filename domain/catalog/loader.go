package catalog

import (
	"context"
	"log/slog"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/NeilHuang625/zcmetal/pkg/logger"
	"github.com/NeilHuang625/zcmetal/pkg/tracing"
)

// DefaultConcurrency bounds parallel Resolve calls per load.
const DefaultConcurrency = 8

// Spec describes what one Loader enumerates and how it orders the result.
type Spec struct {
	Kind     Kind
	Pattern  string
	Ordering Ordering
	// Captions supplies curated titles, keyed by numeric folder.
	Captions TitleTable
}

// Loader builds one catalog, once. A new mount needs a new Loader.
type Loader struct {
	spec        Spec
	source      Source
	concurrency int
	log         *slog.Logger

	mu    sync.Mutex
	state State
}

type LoaderOption func(*Loader)

func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

func WithLogger(log *slog.Logger) LoaderOption {
	return func(l *Loader) { l.log = log }
}

func NewLoader(src Source, spec Spec, opts ...LoaderOption) *Loader {
	l := &Loader{
		spec:        spec,
		source:      src,
		concurrency: DefaultConcurrency,
		log:         slog.Default(),
		state:       State{Kind: spec.Kind, Status: StatusIdle},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With(logger.Scope("catalog"), slog.String("kind", string(spec.Kind)))
	return l
}

// State returns a snapshot of the current state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

func (l *Loader) snapshot() State {
	s := l.state
	s.Items = slices.Clone(s.Items)
	return s
}

// Load enumerates, resolves and orders the catalog, then publishes it. It
// never returns an error: enumeration failure publishes an empty failed
// catalog and per-item resolution failures drop the item. Calling Load
// again after it finished returns the published state unchanged.
//
// If ctx is cancelled before publication the work is discarded and the
// state is left as it was.
func (l *Loader) Load(ctx context.Context) State {
	l.mu.Lock()
	if l.state.Status != StatusIdle {
		s := l.snapshot()
		l.mu.Unlock()
		return s
	}
	l.state.Status = StatusLoading
	l.state.Loading = true
	l.state.MountID = uuid.New().String()
	if ro, ok := l.spec.Ordering.(RandomOnce); ok {
		l.state.Seed = seedOrPick(ro.Seed)
	}
	mountID, seed := l.state.MountID, l.state.Seed
	l.mu.Unlock()

	log := l.log.With(slog.String("mount_id", mountID))
	ctx, span := tracing.Start(ctx, "catalog.load",
		attribute.String("zcmetal.catalog.kind", string(l.spec.Kind)),
		attribute.String("zcmetal.catalog.mount_id", mountID),
		attribute.String("zcmetal.catalog.source", l.source.Name()),
	)
	defer span.End()

	start := time.Now()
	items, err := l.build(ctx, log, seed)

	if ctx.Err() != nil {
		span.SetStatus(codes.Error, "cancelled")
		log.Debug("catalog load cancelled, discarding results")
		return l.State()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.Loading = false
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "enumeration failed")
		log.Error("catalog enumeration failed",
			slog.String("pattern", l.spec.Pattern),
			logger.Error(err),
		)
		l.state.Status = StatusFailed
		l.state.Items = []Asset{}
	} else {
		l.state.Status = StatusReady
		l.state.Items = items
	}

	LoadsTotal.WithLabelValues(string(l.spec.Kind), string(l.state.Status)).Inc()
	LoadDuration.WithLabelValues(string(l.spec.Kind)).Observe(time.Since(start).Seconds())
	AssetsPublished.WithLabelValues(string(l.spec.Kind)).Observe(float64(len(l.state.Items)))
	span.SetAttributes(attribute.Int("zcmetal.catalog.items", len(l.state.Items)))

	log.Debug("catalog published",
		slog.String("status", string(l.state.Status)),
		slog.Int("items", len(l.state.Items)),
		slog.Duration("took", time.Since(start)),
	)
	return l.snapshot()
}

// candidate is an asset waiting for its URLs.
type candidate struct {
	asset Asset
	thumb string
}

func (l *Loader) build(ctx context.Context, log *slog.Logger, seed uint64) ([]Asset, error) {
	paths, err := l.source.Enumerate(ctx, l.spec.Pattern)
	if err != nil {
		return nil, err
	}

	var cands []candidate
	if eko, ok := l.spec.Ordering.(ExplicitKeyOrder); ok {
		pairs, partial := pairVideos(paths, eko.Keys)
		for _, m := range partial {
			log.Warn("video dropped: missing half of pair",
				slog.Int("key", m.key),
				slog.String("missing", m.missing),
			)
			AssetsDropped.WithLabelValues(string(l.spec.Kind), "unpaired").Inc()
		}
		for _, p := range pairs {
			cands = append(cands, candidate{asset: videoAsset(p, l.spec.Captions), thumb: p.thumb})
		}
	} else {
		ids := assetIDs(paths)
		for i, p := range paths {
			cands = append(cands, candidate{asset: Asset{
				ID:       ids[i],
				Category: Categorize(p),
				Title:    l.spec.Captions.Title(p),
				Path:     p,
			}})
		}
	}

	items := l.resolve(ctx, log, cands)

	if _, ok := l.spec.Ordering.(RandomOnce); ok {
		shuffle(items, seed)
	}
	return items, nil
}

// resolve fills in URLs concurrently. Items that fail are dropped; the
// relative order of the rest is kept.
func (l *Loader) resolve(ctx context.Context, log *slog.Logger, cands []candidate) []Asset {
	resolved := make([]Asset, len(cands))
	ok := make([]bool, len(cands))

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i, c := range cands {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			a := c.asset
			u, err := l.source.Resolve(ctx, a.Path)
			if err == nil && c.thumb != "" {
				a.ThumbnailURL, err = l.source.Resolve(ctx, c.thumb)
			}
			if err != nil {
				log.Warn("asset dropped: resolve failed",
					slog.String("path", a.Path),
					logger.Error(err),
				)
				AssetsDropped.WithLabelValues(string(l.spec.Kind), "resolve_error").Inc()
				return nil
			}
			a.URL = u
			resolved[i] = a
			ok[i] = true
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Asset, 0, len(cands))
	for i := range resolved {
		if ok[i] {
			out = append(out, resolved[i])
		}
	}
	return out
}

// assetIDs uses the filename as ID, falling back to the dash-joined path
// for filenames that occur more than once.
func assetIDs(paths []string) []string {
	count := make(map[string]int, len(paths))
	for _, p := range paths {
		count[path.Base(p)]++
	}
	ids := make([]string, len(paths))
	for i, p := range paths {
		base := path.Base(p)
		if count[base] > 1 {
			ids[i] = strings.ReplaceAll(strings.TrimPrefix(p, "/"), "/", "-")
			continue
		}
		ids[i] = base
	}
	return ids
}
