// Package content holds the static lookup tables of the site: services,
// solutions, video captions, contact details and quote form options.
//
// The tables are compiled in from site.yaml. Asset references are paths
// relative to the media root and are resolved to URLs by the catalog source.
package content

import (
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/NeilHuang625/zcmetal/pkg/logger"
)

//go:embed site.yaml
var siteYAML []byte

type Site struct {
	Company   Company    `yaml:"company"`
	Hero      Hero       `yaml:"hero"`
	About     About      `yaml:"about"`
	Work      []Slide    `yaml:"work"`
	Services  []Service  `yaml:"services"`
	Solutions []Solution `yaml:"solutions"`
	Videos    []Video    `yaml:"videos"`
	Contact   Contact    `yaml:"contact"`
	Quote     Quote      `yaml:"quote"`
}

type Company struct {
	Name         string `yaml:"name"`
	Logo         string `yaml:"logo"`
	LogoWithName string `yaml:"logoWithName"`
}

type Hero struct {
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle"`
	Background string `yaml:"background"`
}

type About struct {
	Heading    string      `yaml:"heading"`
	Lead       string      `yaml:"lead"`
	Image      string      `yaml:"image"`
	Paragraphs []string    `yaml:"paragraphs"`
	Highlights []Highlight `yaml:"highlights"`
}

type Highlight struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
	Text  string `yaml:"text"`
}

// Slide is one card of the "Our Work" carousel.
type Slide struct {
	Title       string `yaml:"title"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

// Service is one offering. Folder names the gallery directory holding its
// photos, e.g. gallery/gate for the gates service.
type Service struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Folder          string   `yaml:"folder"`
	Image           string   `yaml:"image"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"longDescription"`
	Highlights      []string `yaml:"highlights"`
	Features        []string `yaml:"features"`
}

// Solution is a case study.
type Solution struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Image           string   `yaml:"image"`
	Description     string   `yaml:"description"`
	FullDescription string   `yaml:"fullDescription"`
	Features        []string `yaml:"features"`
	Gallery         []string `yaml:"gallery"`
	Videos          []string `yaml:"videos"`
	Client          string   `yaml:"client"`
	Challenges      []string `yaml:"challenges"`
	Approach        string   `yaml:"approach"`
	Timeline        string   `yaml:"timeline"`
}

// Video captions a showcase clip stored under video/<key>/<key>.mp4.
type Video struct {
	Key         int    `yaml:"key"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Contact struct {
	Phone        string   `yaml:"phone"`
	PhoneDisplay string   `yaml:"phoneDisplay"`
	PhoneNote    string   `yaml:"phoneNote"`
	Email        string   `yaml:"email"`
	Address      []string `yaml:"address"`
	MapEmbedURL  string   `yaml:"mapEmbedURL"`
	Social       []Social `yaml:"social"`
}

type Social struct {
	Network string `yaml:"network"`
	Handle  string `yaml:"handle"`
	QR      string `yaml:"qr"`
}

type Quote struct {
	Services  []Option `yaml:"services"`
	Budgets   []Option `yaml:"budgets"`
	Referrals []Option `yaml:"referrals"`
}

// Option is one <select> entry.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// NewSite loads the compiled-in tables.
func NewSite(log *slog.Logger) (*Site, error) {
	site, err := Load()
	if err != nil {
		return nil, err
	}
	log.With(logger.Scope("content")).Debug("site content loaded",
		slog.Int("services", len(site.Services)),
		slog.Int("solutions", len(site.Solutions)),
		slog.Int("videos", len(site.Videos)),
	)
	return site, nil
}

// Load parses the compiled-in site.yaml.
func Load() (*Site, error) {
	return Parse(siteYAML)
}

// Parse decodes and validates site content.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) validate() error {
	seen := make(map[string]bool, len(s.Services))
	folders := make(map[string]bool, len(s.Services))
	for i, svc := range s.Services {
		if svc.ID == "" || svc.Folder == "" {
			return fmt.Errorf("service %d: id and folder are required", i)
		}
		if seen[svc.ID] {
			return fmt.Errorf("service %q: duplicate id", svc.ID)
		}
		if folders[svc.Folder] {
			return fmt.Errorf("service %q: folder %q already used", svc.ID, svc.Folder)
		}
		seen[svc.ID] = true
		folders[svc.Folder] = true
	}

	clear(seen)
	for i, sol := range s.Solutions {
		if sol.ID == "" {
			return fmt.Errorf("solution %d: id is required", i)
		}
		if seen[sol.ID] {
			return fmt.Errorf("solution %q: duplicate id", sol.ID)
		}
		seen[sol.ID] = true
	}

	keys := make(map[int]bool, len(s.Videos))
	for _, v := range s.Videos {
		if v.Key <= 0 {
			return fmt.Errorf("video key %d: must be positive", v.Key)
		}
		if keys[v.Key] {
			return fmt.Errorf("video key %d: duplicate", v.Key)
		}
		keys[v.Key] = true
	}
	return nil
}

func (s *Site) Service(id string) (Service, bool) {
	for _, svc := range s.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

func (s *Site) Solution(id string) (Solution, bool) {
	for _, sol := range s.Solutions {
		if sol.ID == id {
			return sol, true
		}
	}
	return Solution{}, false
}

func (s *Site) Video(key int) (Video, bool) {
	for _, v := range s.Videos {
		if v.Key == key {
			return v, true
		}
	}
	return Video{}, false
}

// ServiceFolders maps service ids to gallery folder names.
func (s *Site) ServiceFolders() map[string]string {
	m := make(map[string]string, len(s.Services))
	for _, svc := range s.Services {
		m[svc.ID] = svc.Folder
	}
	return m
}
