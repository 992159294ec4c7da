package postgres_test

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/adapter/repo/postgres"
	"github.com/hireline/hireline/internal/domain"
)

func TestVacancyRepo_Create_InsertsSkillsInTx(t *testing.T) {
	tx := &txStub{row: rowStub{scan: func(dest ...any) error {
		setInt64(dest[0], 11)
		return nil
	}}}
	pool := &poolStub{tx: tx}
	r := postgres.NewVacancyRepo(pool)

	id, err := r.Create(t.Context(), domain.Vacancy{
		Name: "Go Developer",
		Skills: []domain.Skill{
			{Name: "Go", Weight: 0.6, Details: "goroutines, channels"},
			{Name: "SQL", Weight: 0.4, Details: "query design"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)

	require.Len(t, tx.execs, 2, "one insert per skill")
	assert.Equal(t, int64(11), tx.execs[0].args[0])
	assert.Equal(t, "Go", tx.execs[0].args[1])
	assert.Equal(t, "SQL", tx.execs[1].args[1])
	assert.True(t, tx.committed)
}

func TestVacancyRepo_Get_NotFound(t *testing.T) {
	pool := &poolStub{row: rowStub{scan: func(_ ...any) error { return pgx.ErrNoRows }}}
	r := postgres.NewVacancyRepo(pool)

	_, err := r.Get(t.Context(), 11)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVacancyRepo_Get_MaterializesSkills(t *testing.T) {
	pool := &poolStub{
		row: rowStub{scan: func(dest ...any) error {
			setInt64(dest[0], 11)
			if p, ok := dest[1].(*string); ok {
				*p = "Go Developer"
			}
			return nil
		}},
		rows: &rowsStub{scans: []func(dest ...any) error{
			func(dest ...any) error {
				setInt64(dest[0], 1)
				setInt64(dest[1], 11)
				if p, ok := dest[2].(*string); ok {
					*p = "Go"
				}
				if p, ok := dest[3].(*float64); ok {
					*p = 0.6
				}
				return nil
			},
		}},
	}
	r := postgres.NewVacancyRepo(pool)

	v, err := r.Get(t.Context(), 11)
	require.NoError(t, err)
	assert.Equal(t, "Go Developer", v.Name)
	require.Len(t, v.Skills, 1)
	assert.Equal(t, "Go", v.Skills[0].Name)
	assert.InDelta(t, 0.6, v.Skills[0].Weight, 1e-9)
}
