package github

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/m-zajac/ghroster/internal/app"
)

type contributorsResponse []contributorsResponseItem

type contributorsResponseItem struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

func decodeContributorsResponse(body []byte) (contributorsResponse, error) {
	var resp contributorsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling contributors response: %w", err)
	}

	return resp, nil
}

func (r contributorsResponse) ToSeeds() []app.ContributorSeed {
	seeds := make([]app.ContributorSeed, 0, len(r))
	for _, item := range r {
		seeds = append(seeds, app.ContributorSeed{
			Login:   item.Login,
			Commits: item.Contributions,
		})
	}

	return seeds
}

type userResponse struct {
	Login string `json:"login"`
	Email string `json:"email"`
}

func decodeUserResponse(body []byte) (userResponse, error) {
	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return userResponse{}, fmt.Errorf("unmarshalling user response: %w", err)
	}

	return resp, nil
}

func (r userResponse) ToProfile() app.UserProfile {
	return app.UserProfile{
		Login: r.Login,
		Email: r.Email,
	}
}

type permissionResponse struct {
	Permission string                 `json:"permission"`
	RoleName   string                 `json:"role_name"`
	User       permissionResponseUser `json:"user"`
}

type permissionResponseUser struct {
	Permissions map[string]bool `json:"permissions"`
}

func decodePermissionResponse(body []byte) (permissionResponse, error) {
	var resp permissionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return permissionResponse{}, fmt.Errorf("unmarshalling permission response: %w", err)
	}

	return resp, nil
}

// ToRole maps the collaborator permission payload to app.Role.
//
// The role label prefers the exact role_name. Older payloads carry only the
// coarse permission level, which is then mapped to a label and expanded to
// the implied capability set.
func (r permissionResponse) ToRole() app.Role {
	var name string
	if r.RoleName != "" {
		name = capitalize(r.RoleName)
	} else {
		switch r.Permission {
		case "admin":
			name = "Admin"
		case "write":
			name = "Maintainer"
		case "read":
			name = "Read"
		default:
			name = "Collaborator"
		}
	}

	permissions := []string{}
	if len(r.User.Permissions) > 0 {
		for p, granted := range r.User.Permissions {
			if granted {
				permissions = append(permissions, p)
			}
		}
		sort.Strings(permissions)
	} else {
		switch r.Permission {
		case "admin":
			permissions = []string{"admin", "push", "pull"}
		case "write":
			permissions = []string{"push", "pull"}
		case "read":
			permissions = []string{"pull"}
		}
	}

	return app.Role{
		Name:        name,
		Permissions: permissions,
	}
}

type userReposResponse []userReposResponseItem

type userReposResponseItem struct {
	FullName    string          `json:"full_name"`
	HTMLURL     string          `json:"html_url"`
	Permissions map[string]bool `json:"permissions"`
}

func decodeUserReposResponse(body []byte) (userReposResponse, error) {
	var resp userReposResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling user repos response: %w", err)
	}

	return resp, nil
}

func (r userReposResponse) ToExternalRepos() []app.ExternalRepo {
	repos := make([]app.ExternalRepo, 0, len(r))
	for _, item := range r {
		role := "read"
		switch {
		case item.Permissions["admin"]:
			role = "admin"
		case item.Permissions["push"]:
			role = "write"
		}

		repos = append(repos, app.ExternalRepo{
			FullName: item.FullName,
			URL:      item.HTMLURL,
			Role:     role,
		})
	}

	return repos
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
