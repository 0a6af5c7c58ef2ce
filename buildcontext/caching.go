package buildcontext

import (
	"github.com/alexandre-normand/slacklane/config"
	"github.com/alexandre-normand/slacklane/slog"
	"github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	cacheSizeDisabledValue = 0

	laneKey            = "lane"
	branchKey          = "branch"
	authorKey          = "author"
	commitMessageKey   = "commitMessage"
	shortCommitHashKey = "shortCommitHash"
	commitHashKey      = "commitHash"
)

// valueLoader is the function to load a value when not present in cache
type valueLoader func() string

// cachingBuildContext holds a cache and a loading BuildContext to implement the BuildContext
// loading values from cache
type cachingBuildContext struct {
	loader BuildContext
	logger slog.SLogger
	cache  *lru.ARCCache
}

// NewCaching creates a new build context with caching if enabled via
// config.BuildContextCacheSizeKey. It requires an implementation of the interface that will do
// the actual loading when not in cache. With caching disabled, the loader is returned as is
func NewCaching(v *viper.Viper, loader BuildContext, logger slog.SLogger) (bc BuildContext, err error) {
	cs := v.GetInt(config.BuildContextCacheSizeKey)

	if cs == cacheSizeDisabledValue {
		return loader, nil
	}

	cbc := new(cachingBuildContext)
	cbc.cache, err = lru.NewARC(cs)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid build context cache size [%d]", cs)
	}

	cbc.loader = loader
	cbc.logger = logger

	return cbc, nil
}

// LaneName returns the cached lane name
func (c *cachingBuildContext) LaneName() string {
	return c.getOrLoad(laneKey, c.loader.LaneName)
}

// GitBranch returns the cached git branch
func (c *cachingBuildContext) GitBranch() string {
	return c.getOrLoad(branchKey, c.loader.GitBranch)
}

// GitAuthorEmail returns the cached author email
func (c *cachingBuildContext) GitAuthorEmail() string {
	return c.getOrLoad(authorKey, c.loader.GitAuthorEmail)
}

// LastGitCommitMessage returns the cached commit message
func (c *cachingBuildContext) LastGitCommitMessage() string {
	return c.getOrLoad(commitMessageKey, c.loader.LastGitCommitMessage)
}

// LastGitCommitHash returns the cached commit hash
func (c *cachingBuildContext) LastGitCommitHash(short bool) string {
	if short {
		return c.getOrLoad(shortCommitHashKey, func() string { return c.loader.LastGitCommitHash(true) })
	}

	return c.getOrLoad(commitHashKey, func() string { return c.loader.LastGitCommitHash(false) })
}

// getOrLoad gets the value from the cache. If the entry isn't in cache, it's loaded using the
// loader function and then added to the cache. Empty values are cached as well
func (c *cachingBuildContext) getOrLoad(key string, load valueLoader) (value string) {
	if cached, exists := c.cache.Get(key); exists {
		c.logger.Debugf("Build context value [%s] in cache so using that\n", key)

		if value, ok := cached.(string); ok {
			return value
		}
	}

	c.logger.Debugf("Build context value [%s] not found in cache, loading and saving\n", key)
	value = load()
	c.cache.Add(key, value)

	return value
}
