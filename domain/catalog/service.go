package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/NeilHuang625/zcmetal/internal/config"
	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/internal/storage"
	"github.com/NeilHuang625/zcmetal/pkg/apperror"
	"github.com/NeilHuang625/zcmetal/pkg/logger"
)

// Patterns enumerated per catalog kind.
const (
	patternGalleryAll    = "gallery/**/*.{jpg,jpeg,png,svg}"
	patternServiceFormat = "gallery/%s/*.{png,jpg,jpeg,svg}"
	patternVideos        = "video/**/*.{mp4,jpg}"
)

// NewSource picks the configured media source.
func NewSource(cfg *config.Config, store *storage.Service, log *slog.Logger) (Source, error) {
	log = log.With(logger.Scope("catalog"))
	if cfg.Media.UseS3() {
		if !store.Enabled() {
			return nil, fmt.Errorf("media source s3 requires storage to be configured")
		}
		log.Info("media source: s3 bucket", slog.String("bucket", cfg.Storage.Bucket))
		return NewS3Source(store, cfg.Storage.URLExpiry), nil
	}
	log.Info("media source: filesystem",
		slog.String("root", cfg.Media.Root),
		slog.String("url_prefix", cfg.Media.URLPrefix),
	)
	return NewFSSource(os.DirFS(cfg.Media.Root), cfg.Media.URLPrefix), nil
}

// Request is one mount of a catalog as seen over HTTP.
type Request struct {
	Kind      Kind
	ServiceID string
	// Seed reproduces a previous random-once order. Zero picks a new one.
	Seed uint64
	// Shown restores the pager after "load more".
	Shown int
	// Photo opens the lightbox on the asset with this id.
	Photo string
	// Key is a keyboard key applied to the open lightbox.
	Key string
}

// View is a loaded catalog together with its presentation state.
type View struct {
	State    State
	Pager    Pager
	Visible  []Asset
	Lightbox *Lightbox
}

// Empty reports whether there is nothing to show.
func (v *View) Empty() bool { return len(v.State.Items) == 0 }

// Service builds catalogs for the site.
type Service struct {
	source      Source
	captions    TitleTable
	folders     map[string]string
	videoKeys   []int
	concurrency int
	log         *slog.Logger
}

func NewService(src Source, site *content.Site, cfg *config.Config, log *slog.Logger) *Service {
	captions := make(TitleTable, len(site.Videos))
	for _, v := range site.Videos {
		captions[v.Key] = Caption{Title: v.Title, Description: v.Description}
	}
	return &Service{
		source:      src,
		captions:    captions,
		folders:     site.ServiceFolders(),
		videoKeys:   KeyRange(cfg.Media.VideoKeys),
		concurrency: cfg.Media.Concurrency,
		log:         log,
	}
}

func (s *Service) Source() Source { return s.source }

// Spec returns the catalog definition for kind. For gallery-by-service it
// reports false when serviceID has no gallery folder.
func (s *Service) Spec(kind Kind, serviceID string, seed uint64) (Spec, bool) {
	switch kind {
	case KindGalleryAll:
		return Spec{Kind: kind, Pattern: patternGalleryAll, Ordering: RandomOnce{Seed: seed}}, true
	case KindGalleryByService:
		folder, ok := s.folders[serviceID]
		if !ok {
			return Spec{}, false
		}
		return Spec{Kind: kind, Pattern: fmt.Sprintf(patternServiceFormat, folder), Ordering: EnumerationOrder{}}, true
	case KindVideoShowcase:
		return Spec{Kind: kind, Pattern: patternVideos, Ordering: ExplicitKeyOrder{Keys: s.videoKeys}, Captions: s.captions}, true
	}
	return Spec{}, false
}

// NewLoader starts a new mount.
func (s *Service) NewLoader(spec Spec) *Loader {
	return NewLoader(s.source, spec, WithConcurrency(s.concurrency), WithLogger(s.log))
}

// Load mounts the requested catalog and applies pager and lightbox state.
// An unknown service yields an empty ready catalog.
func (s *Service) Load(ctx context.Context, req Request) (*View, error) {
	if _, ok := ParseKind(string(req.Kind)); !ok {
		return nil, apperror.ErrUnknownCatalog.WithMessage(fmt.Sprintf("unknown catalog '%s'", req.Kind))
	}
	if req.Kind == KindGalleryByService && req.ServiceID == "" {
		return nil, apperror.NewBadRequest("service is required for " + string(KindGalleryByService))
	}

	var state State
	spec, ok := s.Spec(req.Kind, req.ServiceID, req.Seed)
	if ok {
		state = s.NewLoader(spec).Load(ctx)
	} else {
		state = State{Kind: req.Kind, Status: StatusReady, Items: []Asset{}, MountID: uuid.New().String()}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pager := PagerAt(len(state.Items), req.Shown)
	v := &View{State: state, Pager: pager, Visible: pager.Visible(state.Items)}
	if req.Photo != "" {
		lb := NewLightbox(v.Visible)
		if lb.Select(req.Photo) {
			lb.HandleKey(req.Key)
			if lb.IsOpen() {
				v.Lightbox = lb
			}
		}
	}
	return v, nil
}
