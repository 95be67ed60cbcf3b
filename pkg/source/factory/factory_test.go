package factory

import (
	"testing"

	"github.com/iWorld-y/rokey_news/pkg/source/newsapi"
	"github.com/iWorld-y/rokey_news/pkg/source/rss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(Config{})
	require.NoError(t, err)
	assert.IsType(t, &newsapi.Client{}, p)

	p, err = NewProvider(Config{Provider: ProviderRSS, Feeds: []string{"https://example.com/feed"}})
	require.NoError(t, err)
	assert.IsType(t, &rss.Client{}, p)

	_, err = NewProvider(Config{Provider: ProviderRSS})
	assert.Error(t, err)

	_, err = NewProvider(Config{Provider: "gdelt"})
	assert.ErrorContains(t, err, "unknown news provider")
}

func TestRequiresKey(t *testing.T) {
	assert.True(t, RequiresKey(""))
	assert.True(t, RequiresKey(ProviderNewsAPI))
	assert.False(t, RequiresKey(ProviderRSS))
}
