package mock

import (
	"context"

	"github.com/m-zajac/ghroster/internal/app"
)

// GithubClient mocks app.GithubClient.
type GithubClient struct {
	ContributorsFunc           func(ctx context.Context, token string, repo app.RepoID) ([]app.ContributorSeed, error)
	UserProfileFunc            func(ctx context.Context, token string, login string) (app.UserProfile, error)
	CollaboratorPermissionFunc func(ctx context.Context, token string, repo app.RepoID, login string) (app.Role, error)
	ReposByUserFunc            func(ctx context.Context, token string, login string, count int) ([]app.ExternalRepo, error)
}

// Contributors returns fake repository contributor list.
func (m *GithubClient) Contributors(ctx context.Context, token string, repo app.RepoID) ([]app.ContributorSeed, error) {
	if m.ContributorsFunc != nil {
		return m.ContributorsFunc(ctx, token, repo)
	}

	return []app.ContributorSeed{}, nil
}

// UserProfile returns fake user profile.
func (m *GithubClient) UserProfile(ctx context.Context, token string, login string) (app.UserProfile, error) {
	if m.UserProfileFunc != nil {
		return m.UserProfileFunc(ctx, token, login)
	}

	return app.UserProfile{Login: login}, nil
}

// CollaboratorPermission returns fake collaborator role.
func (m *GithubClient) CollaboratorPermission(ctx context.Context, token string, repo app.RepoID, login string) (app.Role, error) {
	if m.CollaboratorPermissionFunc != nil {
		return m.CollaboratorPermissionFunc(ctx, token, repo, login)
	}

	return app.DefaultRole(), nil
}

// ReposByUser returns fake user repositories.
func (m *GithubClient) ReposByUser(ctx context.Context, token string, login string, count int) ([]app.ExternalRepo, error) {
	if m.ReposByUserFunc != nil {
		return m.ReposByUserFunc(ctx, token, login, count)
	}

	return []app.ExternalRepo{}, nil
}
