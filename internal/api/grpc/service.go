package grpc

import (
	"context"
	"fmt"

	"github.com/m-zajac/ghroster/internal/app"
)

// AppService can aggregate a contributor roster for a repository.
type AppService interface {
	ContributorRoster(ctx context.Context, repository string, token string) ([]app.ContributorRecord, error)
}

// Service implements ServiceServer definition, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
}

// NewService returns new Service instance.
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// ContributorRoster calls service and returns reply.
func (s *Service) ContributorRoster(ctx context.Context, r *RosterRequest) (*RosterReply, error) {
	records, err := s.appService.ContributorRoster(ctx, r.Repository, r.Token)
	if err != nil {
		return nil, fmt.Errorf("service.ContributorRoster: %w", err)
	}

	contributors := make([]*Contributor, 0, len(records))
	for _, record := range records {
		repos := make([]*ExternalRepo, 0, len(record.ExternalRepos))
		for _, er := range record.ExternalRepos {
			repos = append(repos, &ExternalRepo{
				FullName: er.FullName,
				Url:      er.URL,
				Role:     er.Role,
			})
		}

		contributors = append(contributors, &Contributor{
			Login: record.Login,
			Role: &Role{
				Name:        record.Role.Name,
				Permissions: record.Role.Permissions,
			},
			Commits:       int64(record.Commits),
			ExternalRepos: repos,
			Emails:        record.Emails,
		})
	}

	return &RosterReply{
		Contributors: contributors,
	}, nil
}
