package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	site, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Modern. Durable. Reliable.", site.Hero.Title)
	assert.Len(t, site.Services, 4)
	assert.Len(t, site.Solutions, 5)
	assert.Len(t, site.Videos, 10)
	assert.Equal(t, "zcmetal.daniel@gmail.com", site.Contact.Email)
	assert.Equal(t, "0211071751", site.Contact.Phone)
	assert.Len(t, site.Quote.Budgets, 3)
	assert.Equal(t, "Friend/Referral", site.Quote.Referrals[3].Value)
	assert.Equal(t, "Friend / Referral", site.Quote.Referrals[3].Label)
}

func TestSite_ServiceFolders(t *testing.T) {
	site, err := Load()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"gates":       "gate",
		"fences":      "fence",
		"balustrades": "balustrade",
		"metal-works": "metalwork",
	}, site.ServiceFolders())
}

func TestSite_Lookups(t *testing.T) {
	site, err := Load()
	require.NoError(t, err)

	svc, ok := site.Service("metal-works")
	require.True(t, ok)
	assert.Equal(t, "Metal Works", svc.Title)
	assert.Len(t, svc.Features, 4)

	_, ok = site.Service("windows")
	assert.False(t, ok)

	sol, ok := site.Solution("4")
	require.True(t, ok)
	assert.Equal(t, "7-Meter Automated Entrance", sol.Title)
	assert.Equal(t, []string{"video/3/3.mp4"}, sol.Videos)

	_, ok = site.Solution("99")
	assert.False(t, ok)

	v, ok := site.Video(10)
	require.True(t, ok)
	assert.Equal(t, "Comprehensive Metal Work to Installation", v.Title)

	_, ok = site.Video(11)
	assert.False(t, ok)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "services: [\n"},
		{"missing folder", "services:\n  - id: gates\n"},
		{"duplicate service", "services:\n  - {id: gates, folder: gate}\n  - {id: gates, folder: gate2}\n"},
		{"shared folder", "services:\n  - {id: gates, folder: gate}\n  - {id: doors, folder: gate}\n"},
		{"duplicate solution", "solutions:\n  - {id: \"1\"}\n  - {id: \"1\"}\n"},
		{"bad video key", "videos:\n  - {key: 0, title: x}\n"},
		{"duplicate video key", "videos:\n  - {key: 2}\n  - {key: 2}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
