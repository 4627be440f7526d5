package app

import (
	"fmt"
	"regexp"
)

// RepoID identifies a single github repository.
type RepoID struct {
	Owner string
	Name  string
}

// String returns repository identifier in canonical "owner/name" form.
func (r RepoID) String() string {
	return r.Owner + "/" + r.Name
}

// Accepts "owner/repo" and full github URL forms, with optional ".git" suffix and trailing slash.
var repoIDPattern = regexp.MustCompile(`^(?:(?:https?://)?(?:www\.)?github\.com/)?([a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?)/([a-zA-Z0-9._-]+?)(?:\.git)?/?$`)

// ParseRepoID normalizes a user supplied repository identifier to RepoID.
// Both "owner/repo" and "https://github.com/owner/repo" forms are accepted.
func ParseRepoID(s string) (RepoID, error) {
	if s == "" {
		return RepoID{}, InvalidRequestError("repository cannot be empty")
	}

	m := repoIDPattern.FindStringSubmatch(s)
	if m == nil {
		return RepoID{}, InvalidRequestError(fmt.Sprintf("invalid repository identifier: %q, expected owner/repo or a github url", s))
	}

	return RepoID{
		Owner: m[1],
		Name:  m[2],
	}, nil
}

// Role describes contributor's access to the queried repository.
type Role struct {
	// Name is a display label, eg. "Admin", "Maintainer", "Contributor".
	Name string
	// Permissions holds names of granted capabilities, eg. "push", "pull".
	Permissions []string
}

// DefaultRole is the role assumed for users that are not explicit collaborators of the repository.
func DefaultRole() Role {
	return Role{
		Name:        "Contributor",
		Permissions: []string{},
	}
}

// ContributorSeed is a single entry of repository's contributor list.
type ContributorSeed struct {
	Login   string
	Commits int
}

// UserProfile holds public profile data of a github user.
type UserProfile struct {
	Login string
	Email string
}

// ExternalRepo is a repository related to a contributor other than the queried one.
type ExternalRepo struct {
	FullName string
	URL      string
	Role     string
}

// ContributorRecord is the aggregated data for one contributor.
// Records are unique by Login within one roster.
type ContributorRecord struct {
	Login         string
	Role          Role
	Commits       int
	ExternalRepos []ExternalRepo
	Emails        []string
}
