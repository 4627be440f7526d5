package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/ghroster/internal/api/http/mock"
	"github.com/m-zajac/ghroster/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewRosterHandler(t *testing.T) {
	t.Parallel()

	reset := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setupMock  func(*mock.MockService)
		newRequest func() *http.Request
		wantStatus int
		wantBody   string
	}{
		{
			name: "missing repo parameter",
			newRequest: func() *http.Request {
				r, _ := http.NewRequest(http.MethodGet, "/roster", nil)
				r.Header.Set("Authorization", "Bearer token")
				return r
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"repo parameter is required"}`,
		},
		{
			name: "missing token",
			newRequest: func() *http.Request {
				r, _ := http.NewRequest(http.MethodGet, "/roster?repo=octocat/Hello-World", nil)
				return r
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"authorization token is required"}`,
		},
		{
			name: "empty roster",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ContributorRoster(gomock.Any(), "octocat/Hello-World", "token").
					Return(nil, nil)
			},
			newRequest: func() *http.Request {
				r, _ := http.NewRequest(http.MethodGet, "/roster?repo=octocat/Hello-World", nil)
				r.Header.Set("Authorization", "Bearer token")
				return r
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"data":{"repository":"octocat/Hello-World","contributors":[]}}`,
		},
		{
			name: "repo url is normalized in response",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ContributorRoster(gomock.Any(), "https://github.com/octocat/Hello-World", "token").
					Return(nil, nil)
			},
			newRequest: func() *http.Request {
				r, _ := http.NewRequest(http.MethodGet, "/roster?repo=https://github.com/octocat/Hello-World", nil)
				r.Header.Set("Authorization", "token token")
				return r
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"data":{"repository":"octocat/Hello-World","contributors":[]}}`,
		},
		{
			name: "invalid request",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ContributorRoster(gomock.Any(), "???", "token").
					Return(nil, app.InvalidRequestError("invalid repository identifier"))
			},
			newRequest: func() *http.Request {
				r, _ := http.NewRequest(http.MethodGet, "/roster?repo=%3F%3F%3F", nil)
				r.Header.Set("Authorization", "Bearer token")
				return r
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"invalid repository identifier"}`,
		},
		{
			name: "repository not found",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ContributorRoster(gomock.Any(), "octocat/nope", "token").
					Return(nil, app.NotFoundError("repository octocat/nope"))
			},
			newRequest: func() *http.Request {
				r, _ := http.NewRequest(http.MethodGet, "/roster?repo=octocat/nope", nil)
				r.Header.Set("Authorization", "Bearer token")
				return r
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"error":"repository octocat/nope not found"}`,
		},
		{
			name: "bad token",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ContributorRoster(gomock.Any(), "octocat/Hello-World", "badtoken").
					Return(nil, app.UnauthenticatedError("github rejected the token"))
			},
			newRequest: func() *http.Request {
				r, _ := http.NewRequest(http.MethodGet, "/roster?repo=octocat/Hello-World", nil)
				r.Header.Set("Authorization", "Bearer badtoken")
				return r
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"error":"github rejected the token"}`,
		},
		{
			name: "rate limited",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ContributorRoster(gomock.Any(), "octocat/Hello-World", "token").
					Return(nil, app.RateLimitError{Reset: reset})
			},
			newRequest: func() *http.Request {
				r, _ := http.NewRequest(http.MethodGet, "/roster?repo=octocat/Hello-World", nil)
				r.Header.Set("Authorization", "Bearer token")
				return r
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"success":false,"error":"github api rate limit exceeded, resets at ` + reset.Format(time.RFC1123) + `"}`,
		},
		{
			name: "unexpected error is masked",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ContributorRoster(gomock.Any(), "octocat/Hello-World", "token").
					Return(nil, errors.New("connection reset"))
			},
			newRequest: func() *http.Request {
				r, _ := http.NewRequest(http.MethodGet, "/roster?repo=octocat/Hello-World", nil)
				r.Header.Set("Authorization", "Bearer token")
				return r
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"error":"retrieving contributors failed"}`,
		},
		{
			name: "full roster payload",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ContributorRoster(gomock.Any(), "octocat/Hello-World", "token").
					Return(
						[]app.ContributorRecord{
							{
								Login: "tester",
								Role: app.Role{
									Name:        "Maintainer",
									Permissions: []string{"push", "pull"},
								},
								Commits: 5,
								ExternalRepos: []app.ExternalRepo{
									{FullName: "tester/tool", URL: "https://github.com/tester/tool", Role: "admin"},
								},
								Emails: []string{"tester@example.com"},
							},
							{
								Login: "drive-by",
								Role:  app.DefaultRole(),
							},
						},
						nil,
					)
			},
			newRequest: func() *http.Request {
				r, _ := http.NewRequest(http.MethodGet, "/roster?repo=octocat/Hello-World", nil)
				r.Header.Set("Authorization", "Bearer token")
				return r
			},
			wantStatus: http.StatusOK,
			wantBody: `{"success":true,"data":{"repository":"octocat/Hello-World","contributors":[` +
				`{"username":"tester","role":{"name":"Maintainer","permissions":["push","pull"]},"commitCount":5,"externalRepos":[{"fullName":"tester/tool","url":"https://github.com/tester/tool","role":"admin"}],"emails":["tester@example.com"]},` +
				`{"username":"drive-by","role":{"name":"Contributor","permissions":[]},"commitCount":0,"externalRepos":[],"emails":[]}` +
				`]}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			l := logrus.New()
			handler := NewRosterHandler(s, l)
			req := tt.newRequest()
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-type"))

			body := w.Body.String()
			body = strings.Trim(body, "\n")
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: ""},
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "token abc", want: "abc"},
		{header: "abc", want: "abc"},
		{header: "Bearer  abc ", want: "abc"},
	}
	for _, tt := range tests {
		r, _ := http.NewRequest(http.MethodGet, "/roster", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		assert.Equal(t, tt.want, bearerToken(r))
	}
}
