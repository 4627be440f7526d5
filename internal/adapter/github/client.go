package github

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-zajac/ghroster/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns contributor details from github rest api.
// This struct is an adapter for app.GithubClient.
//
// The auth token is not part of the client: every request is made on behalf
// of a caller supplied personal access token.
//go:generate mockgen -destination mock/githubcli.go -package mock github.com/m-zajac/ghroster/internal/app GithubClient
type Client struct {
	doer    HTTPDoer
	address string

	contributorsResponseMaxSize int
	profileResponseMaxSize      int
	permissionResponseMaxSize   int
	reposResponseMaxSize        int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
func NewClient(doer HTTPDoer, address string) *Client {
	c := Client{
		doer:    doer,
		address: address,

		contributorsResponseMaxSize: 1024 * 1024 * 10,
		profileResponseMaxSize:      1024 * 1024,
		permissionResponseMaxSize:   1024 * 1024,
		reposResponseMaxSize:        1024 * 1024 * 5,
	}

	return &c
}

// Contributors returns repository's contributor list with commit counts.
func (c *Client) Contributors(ctx context.Context, token string, repo app.RepoID) ([]app.ContributorSeed, error) {
	if repo.Owner == "" || repo.Name == "" {
		return nil, app.InvalidRequestError("repository owner and name cannot be empty")
	}

	u, err := url.Parse(c.address + fmt.Sprintf("/repos/%s/%s/contributors", repo.Owner, repo.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	v := make(url.Values)
	v.Set("per_page", "100")
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, token, "repository "+repo.String(), c.contributorsResponseMaxSize)
	if err != nil {
		return nil, err
	}

	resp, err := decodeContributorsResponse(body)
	if err != nil {
		return nil, err
	}

	return resp.ToSeeds(), nil
}

// UserProfile returns public profile of given user.
func (c *Client) UserProfile(ctx context.Context, token string, login string) (app.UserProfile, error) {
	if login == "" {
		return app.UserProfile{}, app.InvalidRequestError("login cannot be empty")
	}

	u, err := url.Parse(c.address + "/users/" + login)
	if err != nil {
		return app.UserProfile{}, fmt.Errorf("invalid url: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return app.UserProfile{}, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, token, "user "+login, c.profileResponseMaxSize)
	if err != nil {
		return app.UserProfile{}, err
	}

	resp, err := decodeUserResponse(body)
	if err != nil {
		return app.UserProfile{}, err
	}

	return resp.ToProfile(), nil
}

// CollaboratorPermission returns the access level github has recorded for
// given user against the repository. Returns app.NotFoundError when the user
// is not an explicit collaborator.
func (c *Client) CollaboratorPermission(ctx context.Context, token string, repo app.RepoID, login string) (app.Role, error) {
	if repo.Owner == "" || repo.Name == "" {
		return app.Role{}, app.InvalidRequestError("repository owner and name cannot be empty")
	}
	if login == "" {
		return app.Role{}, app.InvalidRequestError("login cannot be empty")
	}

	u, err := url.Parse(c.address + fmt.Sprintf("/repos/%s/%s/collaborators/%s/permission", repo.Owner, repo.Name, login))
	if err != nil {
		return app.Role{}, fmt.Errorf("invalid url: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return app.Role{}, fmt.Errorf("creating http request: %w", err)
	}

	reqContext := fmt.Sprintf("collaborator %s of %s", login, repo)
	body, err := c.makeRequest(ctx, httpReq, token, reqContext, c.permissionResponseMaxSize)
	if err != nil {
		return app.Role{}, err
	}

	resp, err := decodePermissionResponse(body)
	if err != nil {
		return app.Role{}, err
	}

	return resp.ToRole(), nil
}

// ReposByUser returns user's own repositories sorted by most recent push.
func (c *Client) ReposByUser(ctx context.Context, token string, login string, count int) ([]app.ExternalRepo, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}
	if count < 1 || count > 100 {
		return nil, app.InvalidRequestError("count must be in range <1..100>")
	}

	u, err := url.Parse(c.address + fmt.Sprintf("/users/%s/repos", login))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	v := make(url.Values)
	v.Set("type", "all")
	v.Set("sort", "pushed")
	v.Set("per_page", strconv.Itoa(count))
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, token, "repositories of "+login, c.reposResponseMaxSize)
	if err != nil {
		return nil, err
	}

	resp, err := decodeUserReposResponse(body)
	if err != nil {
		return nil, err
	}

	return resp.ToExternalRepos(), nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, token string, reqContext string, maxBytes int) ([]byte, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return nil, classifyResponseError(resp, reqContext)
	}

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}

	return b, nil
}

// classifyResponseError maps a non-2xx github response to a typed app error.
func classifyResponseError(resp *http.Response, reqContext string) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return app.NotFoundError(reqContext)
	case http.StatusUnauthorized:
		return app.UnauthenticatedError("github token is invalid or expired")
	case http.StatusForbidden:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			var reset time.Time
			if s := resp.Header.Get("X-RateLimit-Reset"); s != "" {
				if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
					reset = time.Unix(epoch, 0)
				}
			}
			return app.RateLimitError{Reset: reset}
		}
		return app.ForbiddenError("github token lacks access to " + reqContext)
	}

	return fmt.Errorf("got invalid http status code %d for %s", resp.StatusCode, reqContext)
}
