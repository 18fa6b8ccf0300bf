package catalog

import (
	"fmt"
	"path"
	"strconv"
)

const (
	videoExt     = ".mp4"
	thumbnailExt = ".jpg"

	fallbackVideoDescription = "Custom metal work project showcase."
)

// videoPair is a numbered folder with both halves present.
type videoPair struct {
	key   int
	video string
	thumb string
}

// missingHalf describes a key with only one of its two files.
type missingHalf struct {
	key     int
	missing string
}

// pairVideos matches <k>/<k>.mp4 with <k>/<k>.jpg for each key, in key
// order. Keys with neither file are skipped silently; keys with only one
// are reported.
func pairVideos(paths []string, keys []int) ([]videoPair, []missingHalf) {
	type halves struct{ video, thumb string }
	found := make(map[string]*halves)
	for _, p := range paths {
		dir := path.Base(path.Dir(p))
		h := found[dir]
		if h == nil {
			h = &halves{}
			found[dir] = h
		}
		switch path.Base(p) {
		case dir + videoExt:
			if h.video == "" {
				h.video = p
			}
		case dir + thumbnailExt:
			if h.thumb == "" {
				h.thumb = p
			}
		}
	}

	var pairs []videoPair
	var partial []missingHalf
	for _, k := range keys {
		h := found[strconv.Itoa(k)]
		switch {
		case h == nil || (h.video == "" && h.thumb == ""):
		case h.video == "":
			partial = append(partial, missingHalf{key: k, missing: fmt.Sprintf("%d/%d%s", k, k, videoExt)})
		case h.thumb == "":
			partial = append(partial, missingHalf{key: k, missing: fmt.Sprintf("%d/%d%s", k, k, thumbnailExt)})
		default:
			pairs = append(pairs, videoPair{key: k, video: h.video, thumb: h.thumb})
		}
	}
	return pairs, partial
}

// videoAsset builds the unresolved asset for a pair.
func videoAsset(p videoPair, captions TitleTable) Asset {
	c := captions[p.key]
	title := c.Title
	if title == "" {
		title = fmt.Sprintf("Video Project %d", p.key)
	}
	desc := c.Description
	if desc == "" {
		desc = fallbackVideoDescription
	}
	return Asset{
		ID:          path.Base(p.video),
		Category:    strconv.Itoa(p.key),
		Title:       title,
		Description: desc,
		Key:         p.key,
		Path:        p.video,
	}
}
