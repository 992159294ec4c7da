package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/app"
	"github.com/hireline/hireline/internal/domain"
	"github.com/hireline/hireline/internal/domain/mocks"
)

const seedYAML = `
vacancies:
  - name: Go Developer
    description: Backend services in Go
    city: Moscow
    weekly_hours: 40
    required_experience: 3
    salary: 250000
    user_id: 1
    skills:
      - name: Go
        weight: 2
        details: goroutines, channels, profiling
      - name: PostgreSQL
        weight: 1
`

func TestSeedVacancies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacancies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	vacs := mocks.NewVacancyRepository(t)
	vacs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(v domain.Vacancy) bool {
		return v.Name == "Go Developer" && v.IsActive && len(v.Skills) == 2 && v.Skills[0].Weight == 2
	})).Return(int64(1), nil)

	require.NoError(t, app.SeedVacancies(context.Background(), path, vacs))
}

func TestSeedVacanciesMissingFileIsNoop(t *testing.T) {
	vacs := mocks.NewVacancyRepository(t)
	require.NoError(t, app.SeedVacancies(context.Background(), "/nonexistent/seed.yaml", vacs))
}

func TestSeedVacanciesEmptyPathIsNoop(t *testing.T) {
	require.NoError(t, app.SeedVacancies(context.Background(), "", nil))
}

func TestSeedVacanciesBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacancies.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vacancies: {nope"), 0o600))

	vacs := mocks.NewVacancyRepository(t)
	require.Error(t, app.SeedVacancies(context.Background(), path, vacs))
}
