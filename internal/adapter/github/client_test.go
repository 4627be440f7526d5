package github

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/m-zajac/ghroster/internal/app"
	"github.com/m-zajac/ghroster/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientContributors(t *testing.T) {
	t.Parallel()

	rateLimitHeader := http.Header{}
	rateLimitHeader.Set("X-RateLimit-Remaining", "0")
	rateLimitHeader.Set("X-RateLimit-Reset", "1714566600")

	repo := app.RepoID{Owner: "octocat", Name: "Hello-World"}

	tests := []struct {
		name     string
		doer     *mock.HTTPDoer
		repo     app.RepoID
		want     []app.ContributorSeed
		wantErr  bool
		checkErr func(*testing.T, error)
	}{
		{
			name:    "empty repo",
			doer:    &mock.HTTPDoer{},
			repo:    app.RepoID{},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsInvalidRequestError(err))
			},
		},
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`[
						{
							"login": "octocat",
							"id": 583231,
							"type": "User",
							"contributions": 32
						},
						{
							"login": "hubot",
							"id": 480938,
							"type": "Bot",
							"contributions": 4
						}
					]`),
				},
			},
			repo: repo,
			want: []app.ContributorSeed{
				{Login: "octocat", Commits: 32},
				{Login: "hubot", Commits: 4},
			},
		},
		{
			name: "status not found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
			},
			repo:    repo,
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsNotFoundError(err))
				assert.Contains(t, err.Error(), "octocat/Hello-World")
			},
		},
		{
			name: "status unauthorized",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusUnauthorized},
			},
			repo:    repo,
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsUnauthenticatedError(err))
			},
		},
		{
			name: "status forbidden with exhausted rate limit",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
				Headers:  []http.Header{rateLimitHeader},
			},
			repo:    repo,
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsRateLimitError(err))
				assert.Contains(t, err.Error(), time.Unix(1714566600, 0).Format(time.RFC1123))
			},
		},
		{
			name: "status forbidden without rate limit headers",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
			},
			repo:    repo,
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsForbiddenError(err))
			},
		},
		{
			name: "status internal server error",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusInternalServerError},
			},
			repo:    repo,
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.False(t, app.IsNotFoundError(err))
				assert.False(t, app.IsUnauthenticatedError(err))
				assert.False(t, app.IsForbiddenError(err))
				assert.False(t, app.IsRateLimitError(err))
			},
		},
		{
			name: "status ok, body not a list",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{"message": "unexpected"}`)},
			},
			repo:    repo,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake")
			got, err := c.Contributors(context.Background(), "token", tt.repo)
			require.Equal(t, tt.wantErr, err != nil)
			if tt.checkErr != nil {
				tt.checkErr(t, err)
			}
			if tt.wantErr {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientRequestHeadersAndURL(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies:   [][]byte{[]byte(`[]`)},
	}

	c := NewClient(doer, "https://fake")
	_, err := c.Contributors(context.Background(), "secret-token", app.RepoID{Owner: "octocat", Name: "Hello-World"})
	require.NoError(t, err)

	require.Len(t, doer.Requests, 1)
	req := doer.Requests[0]
	assert.Equal(t, "Bearer secret-token", req.Header.Get("Authorization"))
	assert.Equal(t, "application/vnd.github.v3+json", req.Header.Get("Accept"))
	assert.Equal(t, "2022-11-28", req.Header.Get("X-GitHub-Api-Version"))
	assert.Equal(t, "/repos/octocat/Hello-World/contributors", req.URL.Path)
	assert.Equal(t, "100", req.URL.Query().Get("per_page"))
}

func TestClientUserProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doer    *mock.HTTPDoer
		login   string
		want    app.UserProfile
		wantErr bool
	}{
		{
			name:    "empty login",
			doer:    &mock.HTTPDoer{},
			login:   "",
			wantErr: true,
		},
		{
			name: "profile with email",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{"login": "octocat", "email": "octocat@github.com"}`)},
			},
			login: "octocat",
			want:  app.UserProfile{Login: "octocat", Email: "octocat@github.com"},
		},
		{
			name: "profile with null email",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{"login": "octocat", "email": null}`)},
			},
			login: "octocat",
			want:  app.UserProfile{Login: "octocat"},
		},
		{
			name: "user not found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
			},
			login:   "ghost",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake")
			got, err := c.UserProfile(context.Background(), "token", tt.login)
			require.Equal(t, tt.wantErr, err != nil)
			if tt.wantErr {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientCollaboratorPermission(t *testing.T) {
	t.Parallel()

	repo := app.RepoID{Owner: "octocat", Name: "Hello-World"}

	tests := []struct {
		name    string
		doer    *mock.HTTPDoer
		login   string
		want    app.Role
		wantErr bool
	}{
		{
			name: "explicit collaborator",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{[]byte(`{
					"permission": "admin",
					"role_name": "admin",
					"user": {
						"login": "octocat",
						"permissions": {
							"admin": true,
							"maintain": true,
							"push": true,
							"triage": true,
							"pull": true
						}
					}
				}`)},
			},
			login: "octocat",
			want: app.Role{
				Name:        "Admin",
				Permissions: []string{"admin", "maintain", "pull", "push", "triage"},
			},
		},
		{
			name: "not a collaborator",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
			},
			login:   "outsider",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake")
			got, err := c.CollaboratorPermission(context.Background(), "token", repo, tt.login)
			require.Equal(t, tt.wantErr, err != nil)
			if tt.wantErr {
				assert.True(t, app.IsNotFoundError(err))
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientReposByUser(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies: [][]byte{[]byte(`[
			{
				"full_name": "octocat/Hello-World",
				"html_url": "https://github.com/octocat/Hello-World",
				"permissions": {"admin": true, "push": true, "pull": true}
			},
			{
				"full_name": "octocat/Spoon-Knife",
				"html_url": "https://github.com/octocat/Spoon-Knife",
				"permissions": {"admin": false, "push": true, "pull": true}
			},
			{
				"full_name": "github/docs",
				"html_url": "https://github.com/github/docs",
				"permissions": {"admin": false, "push": false, "pull": true}
			}
		]`)},
	}

	c := NewClient(doer, "https://fake")
	got, err := c.ReposByUser(context.Background(), "token", "octocat", 5)
	require.NoError(t, err)

	want := []app.ExternalRepo{
		{FullName: "octocat/Hello-World", URL: "https://github.com/octocat/Hello-World", Role: "admin"},
		{FullName: "octocat/Spoon-Knife", URL: "https://github.com/octocat/Spoon-Knife", Role: "write"},
		{FullName: "github/docs", URL: "https://github.com/github/docs", Role: "read"},
	}
	assert.Equal(t, want, got)

	require.Len(t, doer.Requests, 1)
	q := doer.Requests[0].URL.Query()
	assert.Equal(t, "all", q.Get("type"))
	assert.Equal(t, "pushed", q.Get("sort"))
	assert.Equal(t, "5", q.Get("per_page"))
}

func TestClientReposByUserInvalidCount(t *testing.T) {
	t.Parallel()

	c := NewClient(&mock.HTTPDoer{}, "https://fake")

	_, err := c.ReposByUser(context.Background(), "token", "octocat", 0)
	require.Error(t, err)
	assert.True(t, app.IsInvalidRequestError(err))

	_, err = c.ReposByUser(context.Background(), "token", "octocat", 101)
	require.Error(t, err)
	assert.True(t, app.IsInvalidRequestError(err))
}
