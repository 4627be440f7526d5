package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/m-zajac/ghroster/internal/app"
	"github.com/sirupsen/logrus"
)

// Service can aggregate a contributor roster for a repository.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/ghroster/internal/api/http Service
type Service interface {
	ContributorRoster(ctx context.Context, repository string, token string) ([]app.ContributorRecord, error)
}

type rosterResponse struct {
	Success bool        `json:"success"`
	Data    *rosterData `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type rosterData struct {
	Repository   string        `json:"repository"`
	Contributors []contributor `json:"contributors"`
}

type contributor struct {
	Username      string         `json:"username"`
	Role          role           `json:"role"`
	CommitCount   int            `json:"commitCount"`
	ExternalRepos []externalRepo `json:"externalRepos"`
	Emails        []string       `json:"emails"`
}

type role struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type externalRepo struct {
	FullName string `json:"fullName"`
	URL      string `json:"url"`
	Role     string `json:"role"`
}

func newRosterData(repository string, records []app.ContributorRecord) *rosterData {
	contributors := make([]contributor, 0, len(records))
	for _, r := range records {
		repos := make([]externalRepo, 0, len(r.ExternalRepos))
		for _, er := range r.ExternalRepos {
			repos = append(repos, externalRepo{
				FullName: er.FullName,
				URL:      er.URL,
				Role:     er.Role,
			})
		}

		permissions := r.Role.Permissions
		if permissions == nil {
			permissions = []string{}
		}
		emails := r.Emails
		if emails == nil {
			emails = []string{}
		}

		contributors = append(contributors, contributor{
			Username: r.Login,
			Role: role{
				Name:        r.Role.Name,
				Permissions: permissions,
			},
			CommitCount:   r.Commits,
			ExternalRepos: repos,
			Emails:        emails,
		})
	}

	return &rosterData{
		Repository:   repository,
		Contributors: contributors,
	}
}

// NewRosterHandler creates handlerfunc returning the contributor roster envelope.
//
// The repository is taken from the "repo" query parameter (owner/repo or a
// github url), the token from the Authorization header. Service errors are
// mapped to http statuses and rendered as {"success":false,"error":...} -
// no raw error ever passes this boundary unclassified.
func NewRosterHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repository := r.URL.Query().Get("repo")
		if repository == "" {
			writeError(w, http.StatusBadRequest, "repo parameter is required")
			return
		}
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusBadRequest, "authorization token is required")
			return
		}

		records, err := service.ContributorRoster(r.Context(), repository, token)
		if err != nil {
			status := errorStatus(err)
			message := err.Error()
			if status == http.StatusInternalServerError {
				l.Errorf("roster request for %q failed: %v", repository, err)
				message = "retrieving contributors failed"
			}
			writeError(w, status, message)
			return
		}

		// Echo the normalized identifier; parsing cannot fail after a successful call.
		repoID, _ := app.ParseRepoID(repository)

		writeJSON(w, http.StatusOK, rosterResponse{
			Success: true,
			Data:    newRosterData(repoID.String(), records),
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	for _, prefix := range []string{"Bearer ", "bearer ", "token "} {
		if strings.HasPrefix(auth, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(auth, prefix))
		}
	}

	return strings.TrimSpace(auth)
}

func errorStatus(err error) int {
	switch {
	case app.IsInvalidRequestError(err):
		return http.StatusBadRequest
	case app.IsNotFoundError(err):
		return http.StatusNotFound
	case app.IsUnauthenticatedError(err):
		return http.StatusUnauthorized
	case app.IsRateLimitError(err), app.IsForbiddenError(err):
		return http.StatusForbidden
	case app.IsTooManyRequestsError(err):
		return http.StatusTooManyRequests
	}

	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, rosterResponse{
		Success: false,
		Error:   message,
	})
}

func writeJSON(w http.ResponseWriter, status int, resp rosterResponse) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
