package httpserver_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/adapter/httpserver"
	"github.com/hireline/hireline/internal/config"
	"github.com/hireline/hireline/internal/domain"
	"github.com/hireline/hireline/internal/domain/mocks"
	"github.com/hireline/hireline/internal/prompt"
	"github.com/hireline/hireline/internal/usecase"
)

func testRouter(s *httpserver.Server) http.Handler {
	r := chi.NewRouter()
	r.Post("/v1/applications", s.SubmitApplicationHandler)
	r.Get("/v1/applications", s.ListApplicationsHandler)
	r.Get("/v1/applications/{id}", s.GetApplicationHandler)
	r.Delete("/v1/applications/{id}", s.DeleteApplicationHandler)
	r.Get("/v1/applications/{id}/pre-interview", s.PreInterviewResultHandler)
	r.Get("/v1/applications/{id}/post-interview", s.PostInterviewResultHandler)
	r.Post("/v1/applications/{id}/interview/messages", s.AppendMessageHandler)
	r.Get("/v1/applications/{id}/interview/messages", s.TranscriptHandler)
	r.Post("/v1/applications/{id}/interview/finish", s.FinishInterviewHandler)
	r.Get("/v1/applications/{id}/interview/prompt", s.SessionPromptHandler)
	r.Get("/readyz", s.ReadyzHandler)
	return r
}

func testCfg(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		AppEnv:        "test",
		MaxUploadMB:   10,
		FilesDir:      t.TempDir(),
		RealtimeModel: "gpt-4o-realtime-preview",
	}
}

func errorCode(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &env))
	return env.Error.Code
}

func TestGetApplicationHandler(t *testing.T) {
	apps := mocks.NewApplicationRepository(t)
	apps.EXPECT().Get(mock.Anything, int64(7)).Return(domain.Application{
		ID:        7,
		Status:    domain.StatusPending,
		UserID:    1,
		VacancyID: 2,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}, nil)

	s := &httpserver.Server{
		Cfg:          testCfg(t),
		Applications: usecase.ApplicationService{Apps: apps},
	}
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/applications/7", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "pending", got["status"])
	assert.Equal(t, "2025-06-01T12:00:00Z", got["created_at"])
}

func TestGetApplicationHandlerNotFound(t *testing.T) {
	apps := mocks.NewApplicationRepository(t)
	apps.EXPECT().Get(mock.Anything, int64(404)).Return(domain.Application{}, domain.ErrNotFound)

	s := &httpserver.Server{
		Cfg:          testCfg(t),
		Applications: usecase.ApplicationService{Apps: apps},
	}
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/applications/404", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec.Body))
}

func TestGetApplicationHandlerBadID(t *testing.T) {
	s := &httpserver.Server{Cfg: testCfg(t)}
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/applications/abc", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", errorCode(t, rec.Body))
}

func TestListApplicationsHandlerMissingUserID(t *testing.T) {
	s := &httpserver.Server{Cfg: testCfg(t)}
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/applications", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", errorCode(t, rec.Body))
}

func multipartCV(t *testing.T, filename string, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("cv", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestSubmitApplicationHandler(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF")

	apps := mocks.NewApplicationRepository(t)
	apps.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a domain.Application) bool {
		return a.Status == domain.StatusPending && a.VacancyID == 3 && a.UserID == 9
	})).Return(int64(11), nil)
	vacs := mocks.NewVacancyRepository(t)
	vacs.EXPECT().Get(mock.Anything, int64(3)).Return(domain.Vacancy{ID: 3}, nil)
	conv := mocks.NewFileConverter(t)
	conv.EXPECT().ConvertToPDF(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ domain.Context, path string) (string, error) { return path, nil })
	queue := mocks.NewQueue(t)
	queue.EXPECT().EnqueueAssessment(mock.Anything, domain.AssessmentTask{
		Stage:         domain.StagePreInterview,
		ApplicationID: 11,
	}).Return("task-1", nil)

	s := &httpserver.Server{
		Cfg:          testCfg(t),
		Applications: usecase.NewApplicationService(apps, vacs, conv, queue),
	}

	body, contentType := multipartCV(t, "resume.pdf", pdfBytes, map[string]string{
		"vacancy_id": "3",
		"user_id":    "9",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/applications", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(11), got["id"])
	assert.Equal(t, "pending", got["status"])
}

func TestSubmitApplicationHandlerRejectsExecutable(t *testing.T) {
	s := &httpserver.Server{Cfg: testCfg(t)}

	body, contentType := multipartCV(t, "resume.exe", []byte("MZ\x90\x00"), map[string]string{
		"vacancy_id": "3",
		"user_id":    "9",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/applications", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, "UNSUPPORTED_MEDIA", errorCode(t, rec.Body))
}

func TestSubmitApplicationHandlerRejectsMismatchedContent(t *testing.T) {
	s := &httpserver.Server{Cfg: testCfg(t)}

	// PDF extension but the bytes are a PNG.
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	body, contentType := multipartCV(t, "resume.pdf", png, map[string]string{
		"vacancy_id": "3",
		"user_id":    "9",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/applications", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestAppendMessageHandler(t *testing.T) {
	apps := mocks.NewApplicationRepository(t)
	apps.EXPECT().Get(mock.Anything, int64(5)).Return(domain.Application{
		ID:     5,
		Status: domain.StatusInInterview,
	}, nil)
	msgs := mocks.NewInterviewMessageRepository(t)
	msgs.EXPECT().Append(mock.Anything, mock.MatchedBy(func(m domain.InterviewMessage) bool {
		return m.ApplicationID == 5 && m.Role == domain.RoleUser && m.Message == "hello"
	})).Return(int64(1), nil)

	s := &httpserver.Server{
		Cfg:        testCfg(t),
		Interviews: usecase.InterviewService{Apps: apps, Messages: msgs},
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/applications/5/interview/messages",
		strings.NewReader(`{"role":"user","message":"hello"}`))
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "user", got["role"])
	assert.Equal(t, "hello", got["message"])
}

func TestAppendMessageHandlerRejectsBadRole(t *testing.T) {
	s := &httpserver.Server{Cfg: testCfg(t)}
	req := httptest.NewRequest(http.MethodPost, "/v1/applications/5/interview/messages",
		strings.NewReader(`{"role":"system","message":"hi"}`))
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", errorCode(t, rec.Body))
}

func TestFinishInterviewHandlerConflict(t *testing.T) {
	apps := mocks.NewApplicationRepository(t)
	apps.EXPECT().Get(mock.Anything, int64(5)).Return(domain.Application{
		ID:     5,
		Status: domain.StatusPending,
	}, nil)

	s := &httpserver.Server{
		Cfg:        testCfg(t),
		Interviews: usecase.InterviewService{Apps: apps},
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/applications/5/interview/finish", nil)
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", errorCode(t, rec.Body))
}

func TestSessionPromptHandler(t *testing.T) {
	apps := mocks.NewApplicationRepository(t)
	apps.EXPECT().Get(mock.Anything, int64(5)).Return(domain.Application{
		ID:        5,
		CVPath:    "files/cv.pdf",
		Status:    domain.StatusApprovedForInterview,
		VacancyID: 2,
	}, nil)
	vacs := mocks.NewVacancyRepository(t)
	vacs.EXPECT().Get(mock.Anything, int64(2)).Return(domain.Vacancy{ID: 2, Name: "Go Developer"}, nil)
	extractor := mocks.NewTextExtractor(t)
	extractor.EXPECT().ExtractText(mock.Anything, "files/cv.pdf").Return("five years of Go", nil)

	s := &httpserver.Server{
		Cfg:        testCfg(t),
		Interviews: usecase.InterviewService{Apps: apps, Vacancies: vacs, Extractor: extractor},
	}
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/applications/5/interview/prompt", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "gpt-4o-realtime-preview", got["model"])
	assert.Equal(t, prompt.EndOfConversationTag, got["end_of_conversation_tag"])
	assert.Contains(t, got["prompt"], "Go Developer")
	assert.Contains(t, got["prompt"], "five years of Go")
}

func TestPostInterviewResultHandler(t *testing.T) {
	apps := mocks.NewApplicationRepository(t)
	apps.EXPECT().Get(mock.Anything, int64(5)).Return(domain.Application{ID: 5}, nil)
	post := mocks.NewPostInterviewRepository(t)
	post.EXPECT().GetByApplication(mock.Anything, int64(5)).Return(domain.PostInterviewResult{
		ID:            1,
		ApplicationID: 5,
		IsRecommended: true,
		Score:         0.82,
		Summary:       "solid",
	}, nil)
	skills := mocks.NewSkillResultRepository(t)
	skills.EXPECT().ListByApplication(mock.Anything, int64(5)).Return([]domain.SkillResult{
		{SkillID: 1, Score: 0.9, Weight: 2},
	}, nil)
	msgs := mocks.NewInterviewMessageRepository(t)
	msgs.EXPECT().ListByApplication(mock.Anything, int64(5)).Return([]domain.InterviewMessage{
		{ID: 1, Role: domain.RoleAssistant, Message: "tell me"},
	}, nil)

	s := &httpserver.Server{
		Cfg: testCfg(t),
		Results: usecase.ResultService{
			Apps:         apps,
			Post:         post,
			SkillResults: skills,
			Messages:     msgs,
		},
	}
	rec := httptest.NewRecorder()
	testRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/applications/5/post-interview", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, true, got["is_recommended"])
	assert.InDelta(t, 0.82, got["score"], 1e-9)
	assert.Len(t, got["skill_scores"], 1)
	assert.Len(t, got["transcript"], 1)
}

func TestReadyzHandler(t *testing.T) {
	ok := func(domain.Context) error { return nil }
	failing := func(domain.Context) error { return errors.New("dial tcp: connection refused") }

	t.Run("all healthy", func(t *testing.T) {
		s := &httpserver.Server{Cfg: testCfg(t), DBCheck: ok, RedisCheck: ok, KafkaCheck: ok}
		rec := httptest.NewRecorder()
		testRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("dependency down", func(t *testing.T) {
		s := &httpserver.Server{Cfg: testCfg(t), DBCheck: ok, RedisCheck: failing, KafkaCheck: ok}
		rec := httptest.NewRecorder()
		testRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "ok", got["postgres"])
		assert.Contains(t, got["redis"], "connection refused")
	})
}
