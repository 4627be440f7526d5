package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// maxRosterSize bounds the number of contributors processed per roster.
	// Contributors past this index are dropped to keep outbound call count
	// within the api rate limit.
	maxRosterSize = 50

	// maxExternalRepos bounds the number of related repositories per contributor.
	maxExternalRepos = 5
)

// GithubClient returns contributor data from github rest api.
// The token is supplied by the caller and passed through per request.
type GithubClient interface {
	Contributors(ctx context.Context, token string, repo RepoID) ([]ContributorSeed, error)
	UserProfile(ctx context.Context, token string, login string) (UserProfile, error)
	CollaboratorPermission(ctx context.Context, token string, repo RepoID, login string) (Role, error)
	ReposByUser(ctx context.Context, token string, login string, count int) ([]ExternalRepo, error)
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	githubClient GithubClient
	timeout      time.Duration
	l            logrus.FieldLogger
}

// NewService creates new Service instance.
func NewService(githubClient GithubClient, timeout time.Duration, l logrus.FieldLogger) *Service {
	return &Service{
		githubClient: githubClient,
		timeout:      timeout,
		l:            l,
	}
}

// ContributorRoster aggregates contributor data for given repository.
//
// The repository contributor list is fetched first and any failure of that
// call aborts the whole operation. Details for each contributor (profile,
// collaborator permission, related repositories) are fetched concurrently and
// tolerate partial failure: every facet that cannot be retrieved is replaced
// with its default value and logged, never raised.
//
// The returned roster preserves contributor list order and holds at most 50
// records. Zero contributors is a valid, non-error result.
func (s *Service) ContributorRoster(ctx context.Context, repository string, token string) ([]ContributorRecord, error) {
	if token == "" {
		return nil, InvalidRequestError("token cannot be empty")
	}
	repo, err := ParseRepoID(repository)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	seeds, err := s.githubClient.Contributors(ctx, token, repo)
	if err != nil {
		return nil, fmt.Errorf("retrieving contributors of %s: %w", repo, err)
	}

	if len(seeds) > maxRosterSize {
		s.l.Warnf("contributor list of %s truncated: dropping %d of %d entries", repo, len(seeds)-maxRosterSize, len(seeds))
		seeds = seeds[:maxRosterSize]
	}

	records := make([]*ContributorRecord, len(seeds))
	seen := make(map[string]bool, len(seeds))

	var wg sync.WaitGroup
	for i, seed := range seeds {
		if seed.Login == "" {
			s.l.Warnf("skipping contributor entry %d of %s: missing login", i, repo)
			continue
		}
		if seen[seed.Login] {
			s.l.Warnf("skipping duplicated contributor entry %q of %s", seed.Login, repo)
			continue
		}
		seen[seed.Login] = true

		wg.Add(1)
		go func(i int, seed ContributorSeed) {
			defer wg.Done()

			record := s.contributorDetails(ctx, token, repo, seed)
			records[i] = &record
		}(i, seed)
	}
	wg.Wait()

	roster := make([]ContributorRecord, 0, len(records))
	for _, record := range records {
		if record != nil {
			roster = append(roster, *record)
		}
	}

	return roster, nil
}

// contributorDetails builds the record for one contributor.
// The three lookups run concurrently and every outcome is folded in
// independently, so a failed facet leaves its default value in place.
func (s *Service) contributorDetails(ctx context.Context, token string, repo RepoID, seed ContributorSeed) ContributorRecord {
	var (
		profile    UserProfile
		profileErr error

		role    Role
		roleErr error

		repos    []ExternalRepo
		reposErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		profile, profileErr = s.githubClient.UserProfile(ctx, token, seed.Login)
	}()
	go func() {
		defer wg.Done()
		role, roleErr = s.githubClient.CollaboratorPermission(ctx, token, repo, seed.Login)
	}()
	go func() {
		defer wg.Done()
		repos, reposErr = s.githubClient.ReposByUser(ctx, token, seed.Login, maxExternalRepos)
	}()
	wg.Wait()

	record := ContributorRecord{
		Login:         seed.Login,
		Commits:       seed.Commits,
		Role:          DefaultRole(),
		ExternalRepos: []ExternalRepo{},
		Emails:        []string{},
	}

	if profileErr != nil {
		s.l.Warnf("retrieving profile of %s: %v", seed.Login, profileErr)
	} else if profile.Email != "" {
		record.Emails = append(record.Emails, profile.Email)
	}

	switch {
	case roleErr == nil:
		record.Role = role
	case IsNotFoundError(roleErr):
		// Not an explicit collaborator, the default role stands.
	default:
		s.l.Warnf("retrieving permission of %s on %s: %v", seed.Login, repo, roleErr)
	}

	if reposErr != nil {
		s.l.Warnf("retrieving repositories of %s: %v", seed.Login, reposErr)
	} else {
		for _, r := range repos {
			if strings.EqualFold(r.FullName, repo.String()) {
				continue
			}
			record.ExternalRepos = append(record.ExternalRepos, r)
			if len(record.ExternalRepos) == maxExternalRepos {
				break
			}
		}
	}

	return record
}
