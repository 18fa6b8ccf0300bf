package pages

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	g "maragu.dev/gomponents"

	"github.com/NeilHuang625/zcmetal/domain/catalog"
	"github.com/NeilHuang625/zcmetal/internal/components"
	"github.com/NeilHuang625/zcmetal/internal/config"
	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/pkg/apperror"
	"github.com/NeilHuang625/zcmetal/pkg/logger"
)

// galleryAnchor is the fragment of the service detail gallery.
const galleryAnchor = "gallery"

// Handler renders the HTML pages
type Handler struct {
	site    *content.Site
	catalog *catalog.Service
	cfg     *config.Config
	log     *slog.Logger
	now     func() time.Time
}

// NewHandler creates a new pages handler
func NewHandler(site *content.Site, svc *catalog.Service, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		site:    site,
		catalog: svc,
		cfg:     cfg,
		log:     log.With(logger.Scope("pages")),
		now:     time.Now,
	}
}

// Home renders the landing page
// GET /?section=&seed=&shown=&photo=
func (h *Handler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	intent := ParseIntent(c.QueryParams())

	req, err := catalog.ParseQuery(catalog.KindGalleryAll, c.QueryParams())
	if err != nil {
		return err
	}

	var gallery, videos *catalog.View
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		gallery, err = h.catalog.Load(egCtx, req)
		return err
	})
	eg.Go(func() error {
		var err error
		videos, err = h.catalog.Load(egCtx, catalog.Request{
			Kind:  catalog.KindVideoShowcase,
			Shown: h.cfg.Media.VideoKeys,
		})
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	visible := Plan(ctx, h.cfg.Media.FoldHeight, intent)
	asset := h.assetURL(ctx)
	links := components.GalleryLinks{
		Path:   "/",
		Seed:   gallery.State.Seed,
		Anchor: components.SectionRecentWork,
	}

	return h.render(c, http.StatusOK, components.PageConfig{
		Path:     "/",
		ScrollTo: intent.Section,
	}, asset,
		components.Hero(h.site.Hero, asset, visible[components.SectionHero]),
		components.Services(h.site.Services, asset, visible[components.SectionServices]),
		components.About(h.site.About, asset, visible[components.SectionAbout]),
		components.Work(h.site.Work, asset, visible[components.SectionWork]),
		components.RecentWork(gallery, links, visible[components.SectionRecentWork]),
		components.VideoShowcase(videos, visible[components.SectionVideos]),
		components.GetQuote(h.site.Quote, h.cfg.Quote.Action, visible[components.SectionQuote]),
		components.Contact(h.site.Contact, asset, visible[components.SectionContact]),
	)
}

// ServicesIndex lists every service
// GET /services
func (h *Handler) ServicesIndex(c echo.Context) error {
	asset := h.assetURL(c.Request().Context())
	return h.render(c, http.StatusOK, components.PageConfig{
		Title: "Our Services | " + h.site.Company.Name,
		Path:  "/services",
	}, asset, components.Services(h.site.Services, asset, true))
}

// Service renders one service with its gallery in folder order
// GET /services/:id?shown=&photo=
func (h *Handler) Service(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	path := "/services/" + id

	svc, ok := h.site.Service(id)
	if !ok {
		return h.notFound(c, path, serviceNotFound)
	}

	req, err := catalog.ParseQuery(catalog.KindGalleryByService, c.QueryParams())
	if err != nil {
		return err
	}
	req.ServiceID = svc.ID

	view, err := h.catalog.Load(ctx, req)
	if err != nil {
		return err
	}

	return h.render(c, http.StatusOK, components.PageConfig{
		Title:       svc.Title + " | " + h.site.Company.Name,
		Description: svc.Description,
		Path:        path,
	}, h.assetURL(ctx), components.ServiceDetail(svc, view, components.GalleryLinks{Path: path, Anchor: galleryAnchor}))
}

// ServiceAlias redirects a short service path such as /gates to its page,
// keeping the query.
func (h *Handler) ServiceAlias(id string) echo.HandlerFunc {
	return func(c echo.Context) error {
		target := "/services/" + id
		if q := c.QueryString(); q != "" {
			target += "?" + q
		}
		return c.Redirect(http.StatusMovedPermanently, target)
	}
}

// Solutions lists the case studies
// GET /solutions
func (h *Handler) Solutions(c echo.Context) error {
	asset := h.assetURL(c.Request().Context())
	return h.render(c, http.StatusOK, components.PageConfig{
		Title: "Our Solutions | " + h.site.Company.Name,
		Path:  "/solutions",
	}, asset, components.SolutionsIndex(h.site.Solutions, asset))
}

// Solution renders one case study
// GET /solutions/:id
func (h *Handler) Solution(c echo.Context) error {
	id := c.Param("id")
	path := "/solutions/" + id

	sol, ok := h.site.Solution(id)
	if !ok {
		return h.notFound(c, path, solutionNotFound)
	}

	others := make([]content.Solution, 0, len(h.site.Solutions)-1)
	for _, s := range h.site.Solutions {
		if s.ID != sol.ID {
			others = append(others, s)
		}
	}

	asset := h.assetURL(c.Request().Context())
	return h.render(c, http.StatusOK, components.PageConfig{
		Title:       sol.Title + " | " + h.site.Company.Name,
		Description: sol.Description,
		OGImage:     asset(sol.Image),
		Path:        path,
	}, asset, components.SolutionDetail(sol, others, asset))
}

// NotFoundPage is the fallback for unknown paths
func (h *Handler) NotFoundPage(c echo.Context) error {
	return h.notFound(c, c.Request().URL.Path, pageNotFound)
}

// notFoundPage is the HTML rendition of a not-found error.
type notFoundPage struct {
	err     *apperror.Error
	title   string
	message string
	back    string
	label   string
}

var (
	serviceNotFound = notFoundPage{
		err:     apperror.ErrServiceNotFound,
		title:   "Service Not Found",
		message: "The service you're looking for doesn't exist.",
		back:    "/services",
		label:   "Back to Services",
	}
	solutionNotFound = notFoundPage{
		err:     apperror.ErrSolutionNotFound,
		title:   "Solution Not Found",
		message: "The solution you're looking for doesn't exist.",
		back:    "/solutions",
		label:   "Back to Solutions",
	}
	pageNotFound = notFoundPage{
		err:     apperror.ErrNotFound,
		title:   "Page Not Found",
		message: "The page you're looking for doesn't exist.",
		back:    "/",
		label:   "Back to Home",
	}
)

func (h *Handler) notFound(c echo.Context, path string, p notFoundPage) error {
	h.log.Debug("page not found",
		slog.String("path", path),
		slog.String("code", p.err.Code),
	)
	return h.render(c, p.err.HTTPStatus, components.PageConfig{
		Title: p.title + " | " + h.site.Company.Name,
		Path:  path,
	}, h.assetURL(c.Request().Context()), components.NotFound(p.title, p.message, p.back, p.label))
}

// assetURL resolves static content references through the media source.
// References that do not resolve fall back to the placeholder image.
func (h *Handler) assetURL(ctx context.Context) components.AssetURL {
	src := h.catalog.Source()
	return func(p string) string {
		if p == "" {
			return components.PlaceholderImage
		}
		u, err := src.Resolve(ctx, p)
		if err != nil {
			h.log.Debug("asset not resolved",
				slog.String("path", p),
				logger.Error(err),
			)
			return components.PlaceholderImage
		}
		return u
	}
}

func (h *Handler) render(c echo.Context, status int, cfg components.PageConfig, asset components.AssetURL, children ...g.Node) error {
	cfg.Year = h.now().Year()
	page := components.Layout(cfg, h.site, asset, children...)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return page.Render(c.Response())
}
