package catalog

import (
	"net/url"
	"strconv"

	"github.com/NeilHuang625/zcmetal/pkg/apperror"
)

// Response is the JSON shape of GET /api/catalog/:kind.
type Response struct {
	Kind         Kind    `json:"kind"`
	Status       Status  `json:"status"`
	Loading      bool    `json:"loading"`
	Items        []Asset `json:"items"`
	Total        int     `json:"total"`
	DisplayCount int     `json:"displayCount"`
	Remaining    int     `json:"remaining"`
	Exhausted    bool    `json:"exhausted"`
	Seed         uint64  `json:"seed,string,omitempty"`
	MountID      string  `json:"mountId"`
	Selected     *Asset  `json:"selected,omitempty"`
	PreviousID   string  `json:"previousId,omitempty"`
	NextID       string  `json:"nextId,omitempty"`
}

// NewResponse renders the displayed subset of v.
func NewResponse(v *View) Response {
	r := Response{
		Kind:         v.State.Kind,
		Status:       v.State.Status,
		Loading:      v.State.Loading,
		Items:        v.Visible,
		Total:        v.Pager.Total(),
		DisplayCount: v.Pager.Shown(),
		Remaining:    v.Pager.Remaining(),
		Exhausted:    v.Pager.Exhausted(),
		Seed:         v.State.Seed,
		MountID:      v.State.MountID,
	}
	if r.Items == nil {
		r.Items = []Asset{}
	}
	if v.Lightbox != nil {
		if cur, ok := v.Lightbox.Current(); ok {
			r.Selected = &cur
			r.PreviousID, r.NextID = v.Lightbox.Neighbours()
		}
	}
	return r
}

// ParseQuery reads the seed, shown, photo, key and service parameters.
func ParseQuery(kind Kind, q url.Values) (Request, error) {
	req := Request{
		Kind:      kind,
		ServiceID: q.Get("service"),
		Photo:     q.Get("photo"),
		Key:       q.Get("key"),
	}
	switch req.Key {
	case "", "ArrowLeft", "ArrowRight", "Escape":
	default:
		return Request{}, apperror.NewBadRequest("key must be ArrowLeft, ArrowRight or Escape")
	}
	if s := q.Get("seed"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Request{}, apperror.NewBadRequest("seed must be an unsigned integer")
		}
		req.Seed = seed
	}
	if s := q.Get("shown"); s != "" {
		shown, err := strconv.Atoi(s)
		if err != nil || shown < 0 {
			return Request{}, apperror.NewBadRequest("shown must be a non-negative integer")
		}
		req.Shown = shown
	}
	return req, nil
}
