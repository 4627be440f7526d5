package github

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/ghroster/internal/app"
)

// CachedClient wraps github client with caching layer.
//
// Cache keys carry a fingerprint of the caller's token, so data fetched with
// one token is never served to a request made with another.
type CachedClient struct {
	client            app.GithubClient
	contributorsCache *lru.Cache
	profilesCache     *lru.Cache
	permissionsCache  *lru.Cache
	reposCache        *lru.Cache
	ttl               time.Duration
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	contributorsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for contributors: %w", err)
	}
	profilesCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for profiles: %w", err)
	}
	permissionsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for permissions: %w", err)
	}
	reposCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for repos: %w", err)
	}

	return &CachedClient{
		client:            client,
		contributorsCache: contributorsCache,
		profilesCache:     profilesCache,
		permissionsCache:  permissionsCache,
		reposCache:        reposCache,
		ttl:               ttl,
	}, nil
}

// Contributors returns repository's contributor list with commit counts.
func (c *CachedClient) Contributors(ctx context.Context, token string, repo app.RepoID) ([]app.ContributorSeed, error) {
	key := tokenFingerprint(token) + "/" + repo.String()
	if val, ok := c.contributorsCache.Get(key); ok {
		entry := val.(contributorsCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	seeds, err := c.client.Contributors(ctx, token, repo)
	if err != nil {
		return seeds, err
	}

	c.contributorsCache.Add(key, contributorsCacheEntry{
		created: time.Now(),
		data:    seeds,
	})

	return seeds, nil
}

// UserProfile returns public profile of given user.
func (c *CachedClient) UserProfile(ctx context.Context, token string, login string) (app.UserProfile, error) {
	key := tokenFingerprint(token) + "/" + login
	if val, ok := c.profilesCache.Get(key); ok {
		entry := val.(profileCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	profile, err := c.client.UserProfile(ctx, token, login)
	if err != nil {
		return profile, err
	}

	c.profilesCache.Add(key, profileCacheEntry{
		created: time.Now(),
		data:    profile,
	})

	return profile, nil
}

// CollaboratorPermission returns the access level github has recorded for given user against the repository.
func (c *CachedClient) CollaboratorPermission(ctx context.Context, token string, repo app.RepoID, login string) (app.Role, error) {
	key := tokenFingerprint(token) + "/" + repo.String() + "/" + login
	if val, ok := c.permissionsCache.Get(key); ok {
		entry := val.(permissionCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	role, err := c.client.CollaboratorPermission(ctx, token, repo, login)
	if err != nil {
		return role, err
	}

	c.permissionsCache.Add(key, permissionCacheEntry{
		created: time.Now(),
		data:    role,
	})

	return role, nil
}

// ReposByUser returns user's own repositories sorted by most recent push.
func (c *CachedClient) ReposByUser(ctx context.Context, token string, login string, count int) ([]app.ExternalRepo, error) {
	key := tokenFingerprint(token) + "/" + login
	if val, ok := c.reposCache.Get(key); ok {
		entry := val.(reposCacheEntry)
		if entry.count >= count && entry.created.Add(c.ttl).After(time.Now()) {
			repos := entry.data
			if len(repos) > count {
				repos = repos[:count]
			}
			return repos, nil
		}
	}

	repos, err := c.client.ReposByUser(ctx, token, login, count)
	if err != nil {
		return repos, err
	}

	c.reposCache.Add(key, reposCacheEntry{
		created: time.Now(),
		count:   count,
		data:    repos,
	})

	return repos, nil
}

// tokenFingerprint derives a short cache key component from the token.
// The raw token is never used as a key.
func tokenFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

type contributorsCacheEntry struct {
	created time.Time
	data    []app.ContributorSeed
}

type profileCacheEntry struct {
	created time.Time
	data    app.UserProfile
}

type permissionCacheEntry struct {
	created time.Time
	data    app.Role
}

type reposCacheEntry struct {
	created time.Time
	count   int
	data    []app.ExternalRepo
}
