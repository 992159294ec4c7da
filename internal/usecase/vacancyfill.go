package usecase

import (
	"fmt"
	"time"

	"github.com/hireline/hireline/internal/domain"
)

// VacancyFillService extracts vacancy fields from an uploaded description
// document via the scoring engine and creates the vacancy.
type VacancyFillService struct {
	Vacancies   domain.VacancyRepository
	AI          domain.ScoringClient
	Converter   domain.FileConverter
	Attachments domain.AttachmentLoader
}

// NewVacancyFillService constructs a VacancyFillService with its dependencies.
func NewVacancyFillService(vacs domain.VacancyRepository, ai domain.ScoringClient, conv domain.FileConverter, att domain.AttachmentLoader) VacancyFillService {
	return VacancyFillService{Vacancies: vacs, AI: ai, Converter: conv, Attachments: att}
}

const vacancyFillSystem = "Act as an HR analyst that extracts a job vacancy into a typed schema. " +
	"Only use the attached file as evidence. " +
	"Return a structured object that exactly matches the provided schema."

const vacancyFillInstructions = "Task: Extract vacancy fields: name, description, salary, city, weekly_hours_occupancy, required_experience (in years). " +
	"Rules:\n" +
	"- Use only the attached file; if a field is absent or ambiguous, set it to null.\n" +
	"- salary: numeric amount only (no currency symbol), prefer the primary figure; for ranges, prefer the lower bound; for hourly rates, multiply by weekly_hours_occupancy if present, else return null.\n" +
	"- weekly_hours_occupancy: integer hours per week if stated; otherwise null.\n" +
	"- required_experience: integer years; if '3+ years' → 3; if level only (e.g., 'mid-level') and no explicit years, return null.\n" +
	"Return values must conform to the target schema types."

// FromFile normalizes the uploaded description to PDF, extracts the vacancy
// fields, and creates the vacancy. Fields the document does not state stay
// at their zero values; the created vacancy is inactive until edited because
// extraction output is a draft, not a decision.
func (s VacancyFillService) FromFile(ctx domain.Context, path string, userID int64) (domain.Vacancy, error) {
	pdfPath, err := s.Converter.ConvertToPDF(ctx, path)
	if err != nil {
		return domain.Vacancy{}, fmt.Errorf("op=vacancyfill.convert: %w", err)
	}
	att, err := s.Attachments.LoadAttachment(pdfPath)
	if err != nil {
		return domain.Vacancy{}, fmt.Errorf("op=vacancyfill.attachment: %w", err)
	}
	raw, err := s.AI.ScoreJSON(ctx, domain.ScoreRequest{
		System:      vacancyFillSystem,
		User:        vacancyFillInstructions,
		Attachments: []domain.Attachment{att},
		SchemaName:  VacancyFromFileSchemaName,
		Schema:      VacancyFromFileSchema,
	})
	if err != nil {
		return domain.Vacancy{}, fmt.Errorf("op=vacancyfill.extract: %w", err)
	}
	var out VacancyFromFile
	if err := decodeStrict(raw, &out); err != nil {
		return domain.Vacancy{}, fmt.Errorf("op=vacancyfill.judgment: %w", err)
	}

	now := time.Now().UTC()
	v := domain.Vacancy{
		Salary:   out.Salary,
		OpenTime: now,
		IsActive: false,
		UserID:   userID,
	}
	if out.Name != nil {
		v.Name = *out.Name
	}
	if out.Description != nil {
		v.Description = *out.Description
	}
	if out.City != nil {
		v.City = *out.City
	}
	if out.WeeklyHours != nil {
		v.WeeklyHours = *out.WeeklyHours
	}
	if out.RequiredExperience != nil {
		v.RequiredExperience = *out.RequiredExperience
	}
	id, err := s.Vacancies.Create(ctx, v)
	if err != nil {
		return domain.Vacancy{}, fmt.Errorf("op=vacancyfill.create: %w", err)
	}
	v.ID = id
	return v, nil
}
