package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hireline/hireline/internal/config"
	"github.com/hireline/hireline/internal/domain"
	"github.com/hireline/hireline/internal/prompt"
	"github.com/hireline/hireline/internal/usecase"
)

// Server bundles the HTTP handlers and their dependencies.
type Server struct {
	Cfg          config.Config
	Applications usecase.ApplicationService
	Interviews   usecase.InterviewService
	Results      usecase.ResultService
	VacancyFill  usecase.VacancyFillService

	DBCheck    func(ctx domain.Context) error
	RedisCheck func(ctx domain.Context) error
	KafkaCheck func(ctx domain.Context) error
}

var validate = validator.New()

// Upload extensions accepted at intake; everything but PDF is normalized to
// PDF before the pipeline sees it.
var allowedUploadExts = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".rtf":  "application/rtf",
}

// saveUpload validates and persists a multipart file field under a random
// name in the files directory, returning the stored path.
func (s *Server) saveUpload(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("%w: file field %q required", domain.ErrInvalidArgument, field)
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedUploadExts[ext]; !ok {
		return "", fmt.Errorf("%w: extension %q", domain.ErrUnsupportedMedia, ext)
	}

	head := make([]byte, 3072)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("op=upload.read: %w", err)
	}
	head = head[:n]
	mt := mimetype.Detect(head)
	if !uploadMIMEAllowed(mt) {
		return "", fmt.Errorf("%w: detected %s", domain.ErrUnsupportedMedia, mt.String())
	}

	if err := os.MkdirAll(s.Cfg.FilesDir, 0o750); err != nil {
		return "", fmt.Errorf("op=upload.mkdir: %w", err)
	}
	dst := filepath.Join(s.Cfg.FilesDir, uuid.NewString()+ext)
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("op=upload.create: %w", err)
	}
	defer func() { _ = out.Close() }()
	if _, err := out.Write(head); err != nil {
		return "", fmt.Errorf("op=upload.write: %w", err)
	}
	if _, err := io.Copy(out, file); err != nil {
		return "", fmt.Errorf("op=upload.write: %w", err)
	}
	return dst, nil
}

func uploadMIMEAllowed(mt *mimetype.MIME) bool {
	for _, allowed := range allowedUploadExts {
		if mt.Is(allowed) {
			return true
		}
	}
	// Legacy .doc and .rtf files detected as generic OLE/text containers.
	return mt.Is("application/x-ole-storage") || mt.Is("text/rtf")
}

type applicationResponse struct {
	ID         int64   `json:"id"`
	Status     string  `json:"status"`
	ProfileURL *string `json:"profile_url,omitempty"`
	UserID     int64   `json:"user_id"`
	VacancyID  int64   `json:"vacancy_id"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func toApplicationResponse(a domain.Application) applicationResponse {
	return applicationResponse{
		ID:         a.ID,
		Status:     string(a.Status),
		ProfileURL: a.ProfileURL,
		UserID:     a.UserID,
		VacancyID:  a.VacancyID,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// SubmitApplicationHandler handles POST /v1/applications.
//
// Multipart form: cv (file), vacancy_id, user_id, optional profile_url.
func (s *Server) SubmitApplicationHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.Cfg.MaxUploadMB<<20)
	if err := r.ParseMultipartForm(s.Cfg.MaxUploadMB << 20); err != nil {
		writeError(w, r, fmt.Errorf("%w: multipart form: %v", domain.ErrInvalidArgument, err))
		return
	}
	vacancyID, err := strconv.ParseInt(r.FormValue("vacancy_id"), 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: vacancy_id", domain.ErrInvalidArgument))
		return
	}
	userID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: user_id", domain.ErrInvalidArgument))
		return
	}
	var profileURL *string
	if v := strings.TrimSpace(r.FormValue("profile_url")); v != "" {
		profileURL = &v
	}

	path, err := s.saveUpload(r, "cv")
	if err != nil {
		writeError(w, r, err)
		return
	}
	app, err := s.Applications.Submit(r.Context(), path, vacancyID, userID, profileURL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// GetApplicationHandler handles GET /v1/applications/{id}.
func (s *Server) GetApplicationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	app, err := s.Applications.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// ListApplicationsHandler handles GET /v1/applications?user_id=N.
func (s *Server) ListApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: user_id query parameter", domain.ErrInvalidArgument))
		return
	}
	apps, err := s.Applications.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]applicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toApplicationResponse(a))
	}
	writeJSON(w, http.StatusOK, map[string]any{"applications": out})
}

// DeleteApplicationHandler handles DELETE /v1/applications/{id}.
func (s *Server) DeleteApplicationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.Applications.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PreInterviewResultHandler handles GET /v1/applications/{id}/pre-interview.
func (s *Server) PreInterviewResultHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := s.Results.PreResult(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"application_id": res.ApplicationID,
		"is_recommended": res.IsRecommended,
		"score":          res.Score,
		"reason":         res.Reason,
		"created_at":     res.CreatedAt.UTC().Format(time.RFC3339),
	})
}

type skillScoreResponse struct {
	SkillID int64   `json:"skill_id"`
	Score   float64 `json:"score"`
	Weight  float64 `json:"weight"`
}

type transcriptMessageResponse struct {
	ID        int64  `json:"id"`
	Role      string `json:"role"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// PostInterviewResultHandler handles GET /v1/applications/{id}/post-interview.
func (s *Server) PostInterviewResultHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	view, err := s.Results.PostResult(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	skills := make([]skillScoreResponse, 0, len(view.SkillScores))
	for _, sr := range view.SkillScores {
		skills = append(skills, skillScoreResponse{SkillID: sr.SkillID, Score: sr.Score, Weight: sr.Weight})
	}
	transcript := make([]transcriptMessageResponse, 0, len(view.Transcript))
	for _, m := range view.Transcript {
		transcript = append(transcript, transcriptMessageResponse{
			ID:        m.ID,
			Role:      m.Role,
			Message:   m.Message,
			CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"application_id":     view.Result.ApplicationID,
		"is_recommended":     view.Result.IsRecommended,
		"score":              view.Result.Score,
		"interview_summary":  view.Result.InterviewSummary,
		"candidate_response": view.Result.CandidateResponse,
		"summary":            view.Result.Summary,
		"emotional_analysis": view.Result.EmotionalAnalysis,
		"candidate_roadmap":  view.Result.CandidateRoadmap,
		"created_at":         view.Result.CreatedAt.UTC().Format(time.RFC3339),
		"skill_scores":       skills,
		"transcript":         transcript,
	})
}

type appendMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Message string `json:"message" validate:"required"`
}

// AppendMessageHandler handles POST /v1/applications/{id}/interview/messages.
func (s *Server) AppendMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req appendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid JSON body", domain.ErrInvalidArgument))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err))
		return
	}
	m, err := s.Interviews.Append(r.Context(), id, req.Role, req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, transcriptMessageResponse{
		ID:        m.ID,
		Role:      m.Role,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// TranscriptHandler handles GET /v1/applications/{id}/interview/messages.
func (s *Server) TranscriptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	msgs, err := s.Interviews.Transcript(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]transcriptMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, transcriptMessageResponse{
			ID:        m.ID,
			Role:      m.Role,
			Message:   m.Message,
			CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": out})
}

// FinishInterviewHandler handles POST /v1/applications/{id}/interview/finish.
func (s *Server) FinishInterviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.Interviews.Finish(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"status": "queued"})
}

// SessionPromptHandler handles GET /v1/applications/{id}/interview/prompt.
//
// The server never opens the realtime session itself; the voice client takes
// this brief, the advertised model, and the end-of-conversation marker.
func (s *Server) SessionPromptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := s.Interviews.SessionPrompt(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"prompt":                  p,
		"model":                   s.Cfg.RealtimeModel,
		"end_of_conversation_tag": prompt.EndOfConversationTag,
	})
}

type vacancyResponse struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	City               string   `json:"city"`
	WeeklyHours        int      `json:"weekly_hours"`
	RequiredExperience int      `json:"required_experience"`
	Salary             *float64 `json:"salary,omitempty"`
	IsActive           bool     `json:"is_active"`
}

// VacancyFromFileHandler handles POST /v1/vacancies/from-file.
//
// Multipart form: file (vacancy description document), user_id.
func (s *Server) VacancyFromFileHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.Cfg.MaxUploadMB<<20)
	if err := r.ParseMultipartForm(s.Cfg.MaxUploadMB << 20); err != nil {
		writeError(w, r, fmt.Errorf("%w: multipart form: %v", domain.ErrInvalidArgument, err))
		return
	}
	userID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: user_id", domain.ErrInvalidArgument))
		return
	}
	path, err := s.saveUpload(r, "file")
	if err != nil {
		writeError(w, r, err)
		return
	}
	vac, err := s.VacancyFill.FromFile(r.Context(), path, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, vacancyResponse{
		ID:                 vac.ID,
		Name:               vac.Name,
		Description:        vac.Description,
		City:               vac.City,
		WeeklyHours:        vac.WeeklyHours,
		RequiredExperience: vac.RequiredExperience,
		Salary:             vac.Salary,
		IsActive:           vac.IsActive,
	})
}

// HealthzHandler reports process liveness.
func (s *Server) HealthzHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ReadyzHandler probes the dependencies a request would touch.
func (s *Server) ReadyzHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	checks := map[string]func(ctx domain.Context) error{
		"postgres": s.DBCheck,
		"redis":    s.RedisCheck,
		"kafka":    s.KafkaCheck,
	}
	status := http.StatusOK
	body := map[string]string{}
	for name, check := range checks {
		if check == nil {
			body[name] = "skipped"
			continue
		}
		if err := check(ctx); err != nil {
			body[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		body[name] = "ok"
	}
	writeJSON(w, status, body)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id path parameter", domain.ErrInvalidArgument)
	}
	return id, nil
}
