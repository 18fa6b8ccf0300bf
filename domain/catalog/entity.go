package catalog

import "strings"

// Kind names a catalog shape.
type Kind string

const (
	KindGalleryAll       Kind = "gallery-all"
	KindGalleryByService Kind = "gallery-by-service"
	KindVideoShowcase    Kind = "video-showcase"
)

// ParseKind returns the Kind for s, or false if s names no catalog.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindGalleryAll, KindGalleryByService, KindVideoShowcase:
		return k, true
	}
	return "", false
}

// Categories inferred from the gallery folder layout.
const (
	CategoryGates       = "gates"
	CategoryFences      = "fences"
	CategoryBalustrades = "balustrades"
	CategoryMetalWorks  = "metal-works"
	CategoryOthers      = "others"
)

// Asset is one published catalog entry. URL is always set.
type Asset struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Category     string `json:"category"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Key          int    `json:"key,omitempty"`
	Path         string `json:"path"`
}

// Label is the category as shown on a gallery badge.
func (a Asset) Label() string {
	return strings.Replace(a.Category, "-", " ", 1)
}

// Status is the loader state machine: idle, loading, then ready or failed.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// State is what a catalog consumer sees. Items is never nil once the loader
// has finished, even on failure.
type State struct {
	Kind    Kind    `json:"kind"`
	Status  Status  `json:"status"`
	Loading bool    `json:"loading"`
	Items   []Asset `json:"items"`
	// Seed reproduces a random-once order on later requests of one mount.
	Seed    uint64 `json:"seed,string,omitempty"`
	MountID string `json:"mountId"`
}

// Done reports whether the loader reached a terminal state.
func (s State) Done() bool {
	return s.Status == StatusReady || s.Status == StatusFailed
}
