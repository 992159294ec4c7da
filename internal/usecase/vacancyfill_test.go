package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/domain"
	domainmocks "github.com/hireline/hireline/internal/domain/mocks"
	"github.com/hireline/hireline/internal/usecase"
)

func newVacancyFill(t *testing.T) (usecase.VacancyFillService, *domainmocks.VacancyRepository, *domainmocks.ScoringClient, *domainmocks.FileConverter, *domainmocks.AttachmentLoader) {
	vacs := domainmocks.NewVacancyRepository(t)
	ai := domainmocks.NewScoringClient(t)
	conv := domainmocks.NewFileConverter(t)
	att := domainmocks.NewAttachmentLoader(t)
	return usecase.NewVacancyFillService(vacs, ai, conv, att), vacs, ai, conv, att
}

func TestVacancyFillFromFile(t *testing.T) {
	t.Parallel()
	svc, vacs, ai, conv, att := newVacancyFill(t)

	conv.EXPECT().ConvertToPDF(mock.Anything, "files/vacancy.docx").Return("files/vacancy.pdf", nil).Once()
	att.EXPECT().LoadAttachment("files/vacancy.pdf").Return(domain.Attachment{Filename: "vacancy.pdf"}, nil).Once()
	ai.EXPECT().ScoreJSON(mock.Anything, mock.MatchedBy(func(req domain.ScoreRequest) bool {
		return req.SchemaName == usecase.VacancyFromFileSchemaName
	})).Return(json.RawMessage(`{"name":"Backend Engineer","description":"Build services","salary":90000,"city":"Berlin","weekly_hours_occupancy":40,"required_experience":3}`), nil).Once()
	vacs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(v domain.Vacancy) bool {
		return v.Name == "Backend Engineer" && v.City == "Berlin" &&
			v.WeeklyHours == 40 && v.RequiredExperience == 3 &&
			v.Salary != nil && *v.Salary == 90000 && !v.IsActive
	})).Return(int64(9), nil).Once()

	v, err := svc.FromFile(context.Background(), "files/vacancy.docx", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(9), v.ID)
}

func TestVacancyFillNullFields(t *testing.T) {
	t.Parallel()
	svc, vacs, ai, conv, att := newVacancyFill(t)

	conv.EXPECT().ConvertToPDF(mock.Anything, "files/vacancy.pdf").Return("files/vacancy.pdf", nil).Once()
	att.EXPECT().LoadAttachment("files/vacancy.pdf").Return(domain.Attachment{}, nil).Once()
	ai.EXPECT().ScoreJSON(mock.Anything, mock.Anything).
		Return(json.RawMessage(`{"name":"Intern","description":null,"salary":null,"city":null,"weekly_hours_occupancy":null,"required_experience":null}`), nil).Once()
	vacs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(v domain.Vacancy) bool {
		return v.Name == "Intern" && v.Salary == nil && v.WeeklyHours == 0
	})).Return(int64(10), nil).Once()

	_, err := svc.FromFile(context.Background(), "files/vacancy.pdf", 3)
	require.NoError(t, err)
}

func TestVacancyFillBadSchema(t *testing.T) {
	t.Parallel()
	svc, _, ai, conv, att := newVacancyFill(t)

	conv.EXPECT().ConvertToPDF(mock.Anything, "files/vacancy.pdf").Return("files/vacancy.pdf", nil).Once()
	att.EXPECT().LoadAttachment("files/vacancy.pdf").Return(domain.Attachment{}, nil).Once()
	ai.EXPECT().ScoreJSON(mock.Anything, mock.Anything).
		Return(json.RawMessage(`{"name":"x","surprise":true}`), nil).Once()

	_, err := svc.FromFile(context.Background(), "files/vacancy.pdf", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSchemaInvalid)
}
