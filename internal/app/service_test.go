package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/majorleaguegithub/internal/app"
	"github.com/m-zajac/majorleaguegithub/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceContributors(t *testing.T) {
	t.Parallel()

	commitDate := time.Date(2024, 11, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(*mock.MockBackendClient, *mock.MockTeamDirectory)
		filter    app.Filter
		want      []app.Contributor
		wantErr   bool
	}{
		{
			name:    "invalid filter",
			filter:  app.Filter{RegionID: "bad region"},
			want:    nil,
			wantErr: true,
		},
		{
			name: "error from backend",
			setupMock: func(b *mock.MockBackendClient, _ *mock.MockTeamDirectory) {
				b.EXPECT().
					Contributors(gomock.Any(), app.Filter{RegionID: "west"}).
					Return(nil, errors.New("error"))
			},
			filter:  app.Filter{RegionID: "west"},
			want:    nil,
			wantErr: true,
		},
		{
			name: "backend order preserved, duplicates and empty logins dropped",
			setupMock: func(b *mock.MockBackendClient, _ *mock.MockTeamDirectory) {
				b.EXPECT().
					Contributors(gomock.Any(), app.Filter{}).
					Return(
						[]app.Contributor{
							{Login: "zed", TotalCommits: 1},
							{Login: "", TotalCommits: 100},
							{Login: "amy", TotalCommits: 50},
							{Login: "zed", TotalCommits: 7},
						},
						nil,
					)
			},
			want: []app.Contributor{
				{Login: "zed", TotalCommits: 1},
				{Login: "amy", TotalCommits: 50},
			},
		},
		{
			name: "negative numbers clamped",
			setupMock: func(b *mock.MockBackendClient, _ *mock.MockTeamDirectory) {
				b.EXPECT().
					Contributors(gomock.Any(), app.Filter{}).
					Return(
						[]app.Contributor{
							{
								Login:            "amy",
								Score:            -1.5,
								StarsGiven:       -3,
								ForksGiven:       2,
								LatestCommitDate: commitDate,
							},
						},
						nil,
					)
			},
			want: []app.Contributor{
				{
					Login:            "amy",
					ForksGiven:       2,
					LatestCommitDate: commitDate,
				},
			},
		},
		{
			name: "nearest team completed from directory",
			setupMock: func(b *mock.MockBackendClient, d *mock.MockTeamDirectory) {
				b.EXPECT().
					Contributors(gomock.Any(), app.Filter{}).
					Return(
						[]app.Contributor{
							{Login: "amy", NearestTeam: &app.SoccerTeam{ID: "mia", Name: "Inter Miami CF"}},
							{Login: "bob", NearestTeam: &app.SoccerTeam{ID: "unknown", Name: "Somewhere FC"}},
							{Login: "cat"},
						},
						nil,
					)
				d.EXPECT().Lookup("mia").Return(app.SoccerTeam{
					ID:              "mia",
					Name:            "Catalog name",
					Stadium:         "Chase Stadium",
					StadiumCapacity: 21550,
				}, true)
				d.EXPECT().Lookup("unknown").Return(app.SoccerTeam{}, false)
			},
			want: []app.Contributor{
				{
					Login: "amy",
					NearestTeam: &app.SoccerTeam{
						ID:              "mia",
						Name:            "Inter Miami CF",
						Stadium:         "Chase Stadium",
						StadiumCapacity: 21550,
					},
				},
				{Login: "bob", NearestTeam: &app.SoccerTeam{ID: "unknown", Name: "Somewhere FC"}},
				{Login: "cat"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := mock.NewMockBackendClient(ctrl)
			teams := mock.NewMockTeamDirectory(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(backend, teams)
			}

			s := app.NewService(backend, teams, time.Minute)
			got, err := s.Contributors(context.Background(), tt.filter)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceContributorsDoesNotModifyBackendData(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backendData := []app.Contributor{
		{Login: "amy", StarsGiven: -1, NearestTeam: &app.SoccerTeam{ID: "mia"}},
	}
	backend := mock.NewMockBackendClient(ctrl)
	backend.EXPECT().Contributors(gomock.Any(), gomock.Any()).Return(backendData, nil)
	teams := mock.NewMockTeamDirectory(ctrl)
	teams.EXPECT().Lookup("mia").Return(app.SoccerTeam{ID: "mia", Name: "Inter Miami CF"}, true)

	s := app.NewService(backend, teams, time.Minute)
	got, err := s.Contributors(context.Background(), app.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "Inter Miami CF", got[0].NearestTeam.Name)
	assert.Equal(t, "", backendData[0].NearestTeam.Name)
	assert.Equal(t, -1, backendData[0].StarsGiven)
}

func TestServiceFilters(t *testing.T) {
	t.Parallel()

	regions := []app.Region{{ID: "west", Name: "West"}}
	states := []app.State{{ID: "CA", Name: "California", RegionIDs: []string{"west"}}}

	tests := []struct {
		name      string
		setupMock func(*mock.MockBackendClient)
		want      app.Filters
		wantErr   bool
	}{
		{
			name: "both ok",
			setupMock: func(b *mock.MockBackendClient) {
				b.EXPECT().Regions(gomock.Any()).Return(regions, nil)
				b.EXPECT().States(gomock.Any()).Return(states, nil)
			},
			want: app.Filters{Regions: regions, States: states},
		},
		{
			name: "states error",
			setupMock: func(b *mock.MockBackendClient) {
				b.EXPECT().Regions(gomock.Any()).Return(regions, nil).MaxTimes(1)
				b.EXPECT().States(gomock.Any()).Return(nil, errors.New("error"))
			},
			want:    app.Filters{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := mock.NewMockBackendClient(ctrl)
			tt.setupMock(backend)

			s := app.NewService(backend, nil, time.Minute)
			got, err := s.Filters(context.Background())
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServicePage(t *testing.T) {
	t.Parallel()

	contributors := []app.Contributor{{Login: "amy"}}
	hiring := &app.Hiring{
		Manager:     &app.HiringManager{Name: "Jane"},
		JobOpenings: []app.JobOpening{{ID: "1", Title: "Java Engineer"}},
	}

	t.Run("invalid filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := app.NewService(mock.NewMockBackendClient(ctrl), nil, time.Minute)
		_, err := s.Page(context.Background(), app.Filter{StateIDs: []string{"?"}})
		require.Error(t, err)
		assert.True(t, app.IsInvalidRequestError(err))
	})

	t.Run("all sections ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock.NewMockBackendClient(ctrl)
		backend.EXPECT().Contributors(gomock.Any(), app.Filter{RegionID: "west"}).Return(contributors, nil)
		backend.EXPECT().Hiring(gomock.Any()).Return(hiring, nil)
		backend.EXPECT().Regions(gomock.Any()).Return(nil, nil)
		backend.EXPECT().States(gomock.Any()).Return(nil, nil)

		s := app.NewService(backend, nil, time.Minute)
		page, err := s.Page(context.Background(), app.Filter{RegionID: "west"})
		require.NoError(t, err)

		assert.Equal(t, app.Filter{RegionID: "west"}, page.Filter)
		assert.Equal(t, contributors, page.Contributors)
		assert.False(t, page.ContributorsLoading)
		assert.NoError(t, page.ContributorsErr)
		assert.Equal(t, hiring, page.Hiring)
		assert.False(t, page.HiringLoading)
		assert.NoError(t, page.HiringErr)
		assert.NoError(t, page.FiltersErr)
	})

	t.Run("sections fail independently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		backend := mock.NewMockBackendClient(ctrl)
		backend.EXPECT().Contributors(gomock.Any(), gomock.Any()).Return(nil, app.ScheduledForLaterError("scheduled"))
		backend.EXPECT().Hiring(gomock.Any()).Return(nil, errors.New("hiring down"))
		backend.EXPECT().Regions(gomock.Any()).Return(nil, nil)
		backend.EXPECT().States(gomock.Any()).Return(nil, nil)

		s := app.NewService(backend, nil, time.Minute)
		page, err := s.Page(context.Background(), app.Filter{})
		require.NoError(t, err)

		assert.True(t, page.ContributorsLoading)
		assert.NoError(t, page.ContributorsErr)
		assert.False(t, page.HiringLoading)
		assert.Error(t, page.HiringErr)
		assert.Nil(t, page.Hiring)
	})

	t.Run("sections are fetched concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Every backend call waits until all four calls have started.
		const calls = 4
		started := make(chan struct{}, calls)
		all := make(chan struct{})
		go func() {
			for i := 0; i < calls; i++ {
				<-started
			}
			close(all)
		}()
		meet := func(ctx context.Context) error {
			started <- struct{}{}
			select {
			case <-all:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		backend := mock.NewMockBackendClient(ctrl)
		backend.EXPECT().Contributors(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ app.Filter) ([]app.Contributor, error) {
				if err := meet(ctx); err != nil {
					return nil, err
				}
				return nil, errors.New("contributors down")
			})
		backend.EXPECT().Hiring(gomock.Any()).DoAndReturn(
			func(ctx context.Context) (*app.Hiring, error) {
				if err := meet(ctx); err != nil {
					return nil, err
				}
				return nil, errors.New("hiring down")
			})
		backend.EXPECT().Regions(gomock.Any()).DoAndReturn(
			func(ctx context.Context) ([]app.Region, error) {
				return nil, meet(ctx)
			})
		backend.EXPECT().States(gomock.Any()).DoAndReturn(
			func(ctx context.Context) ([]app.State, error) {
				return nil, meet(ctx)
			})

		s := app.NewService(backend, nil, time.Second)
		page, err := s.Page(context.Background(), app.Filter{})
		require.NoError(t, err)

		require.Error(t, page.ContributorsErr)
		assert.Contains(t, page.ContributorsErr.Error(), "contributors down")
		require.Error(t, page.HiringErr)
		assert.Contains(t, page.HiringErr.Error(), "hiring down")
		assert.NoError(t, page.FiltersErr)
	})
}
