package usecase

import (
	"context"
	"log"

	"swipe11-web/internal/careers"

	"golang.org/x/sync/errgroup"
)

// listLimit is how many postings the careers page pulls in one fetch.
// Filtering and grouping then happen in memory.
const listLimit = 100

// OpenPositions is everything the careers page needs to render: the
// filtered grouping plus the option lists that drive the filter dropdowns.
type OpenPositions struct {
	Groups  []careers.DepartmentGroup
	Total   int
	Filters careers.FilterSet

	DepartmentOptions []string
	LocationOptions   []string
	TypeOptions       []string
}

type PositionsUsecase interface {
	OpenPositions(ctx context.Context, filters careers.FilterSet) (*OpenPositions, error)
}

type Positions struct {
	client careers.Client
	logger *log.Logger
}

func NewPositionsUsecase(client careers.Client, logger *log.Logger) *Positions {
	return &Positions{client: client, logger: logger}
}

// OpenPositions fetches the job list and the department aggregates
// concurrently, awaits both, then applies the in-memory filter/group
// engine. The two fetches share no mutable state.
func (u *Positions) OpenPositions(ctx context.Context, filters careers.FilterSet) (*OpenPositions, error) {
	var (
		list        *careers.JobList
		departments []careers.Department
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = u.client.ListJobs(gctx, careers.Filters{Limit: listLimit})
		return err
	})
	g.Go(func() error {
		var err error
		departments, err = u.client.ListDepartments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Positions] load failed: %v", err)
		}
		return nil, err
	}

	filtered := careers.FilterJobs(list.Jobs, filters)

	departmentOptions := make([]string, 0, len(departments)+1)
	departmentOptions = append(departmentOptions, careers.AllDepartments)
	for _, d := range departments {
		departmentOptions = append(departmentOptions, d.Name)
	}

	locationOptions := append([]string{careers.AllLocations}, careers.UniqueLocations(list.Jobs)...)

	return &OpenPositions{
		Groups:            careers.GroupByDepartment(filtered),
		Total:             len(filtered),
		Filters:           filters,
		DepartmentOptions: departmentOptions,
		LocationOptions:   locationOptions,
		TypeOptions:       careers.EmploymentTypeOptions(),
	}, nil
}

var _ PositionsUsecase = (*Positions)(nil)
