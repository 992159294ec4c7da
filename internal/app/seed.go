package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hireline/hireline/internal/domain"
)

type seedSkill struct {
	Name    string  `yaml:"name"`
	Weight  float64 `yaml:"weight"`
	Details string  `yaml:"details"`
}

type seedVacancy struct {
	Name               string      `yaml:"name"`
	Description        string      `yaml:"description"`
	City               string      `yaml:"city"`
	WeeklyHours        int         `yaml:"weekly_hours"`
	RequiredExperience int         `yaml:"required_experience"`
	Salary             *float64    `yaml:"salary"`
	UserID             int64       `yaml:"user_id"`
	Skills             []seedSkill `yaml:"skills"`
}

type seedFile struct {
	Vacancies []seedVacancy `yaml:"vacancies"`
}

// SeedVacancies loads a YAML vacancy seed file and creates its vacancies.
// A missing path is a no-op so fresh environments can start without a seed.
func SeedVacancies(ctx context.Context, path string, repo domain.VacancyRepository) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path) //nolint:gosec // Path comes from deployment config.
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("vacancy seed file not found, skipping", slog.String("path", path))
			return nil
		}
		return fmt.Errorf("op=seed.read: %w", err)
	}
	var doc seedFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("op=seed.parse: %w", err)
	}
	now := time.Now().UTC()
	for _, sv := range doc.Vacancies {
		v := domain.Vacancy{
			Name:               sv.Name,
			Description:        sv.Description,
			City:               sv.City,
			WeeklyHours:        sv.WeeklyHours,
			RequiredExperience: sv.RequiredExperience,
			Salary:             sv.Salary,
			OpenTime:           now,
			IsActive:           true,
			UserID:             sv.UserID,
		}
		for _, ss := range sv.Skills {
			v.Skills = append(v.Skills, domain.Skill{Name: ss.Name, Weight: ss.Weight, Details: ss.Details})
		}
		id, err := repo.Create(ctx, v)
		if err != nil {
			return fmt.Errorf("op=seed.create vacancy %q: %w", sv.Name, err)
		}
		slog.Info("seeded vacancy", slog.Int64("vacancy_id", id), slog.String("name", sv.Name))
	}
	return nil
}
