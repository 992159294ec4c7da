package domain

import "encoding/json"

//go:generate mockery --name=ApplicationRepository --with-expecter --filename=application_repository_mock.go
//go:generate mockery --name=VacancyRepository --with-expecter --filename=vacancy_repository_mock.go
//go:generate mockery --name=PreInterviewRepository --with-expecter --filename=pre_interview_repository_mock.go
//go:generate mockery --name=PostInterviewRepository --with-expecter --filename=post_interview_repository_mock.go
//go:generate mockery --name=SkillResultRepository --with-expecter --filename=skill_result_repository_mock.go
//go:generate mockery --name=InterviewMessageRepository --with-expecter --filename=interview_message_repository_mock.go
//go:generate mockery --name=Queue --with-expecter --filename=queue_mock.go
//go:generate mockery --name=ScoringClient --with-expecter --filename=scoring_client_mock.go
//go:generate mockery --name=TextExtractor --with-expecter --filename=text_extractor_mock.go
//go:generate mockery --name=FileConverter --with-expecter --filename=file_converter_mock.go
//go:generate mockery --name=AttachmentLoader --with-expecter --filename=attachment_loader_mock.go
//go:generate mockery --name=SignalCollector --with-expecter --filename=signal_collector_mock.go
//go:generate mockery --name=StageLock --with-expecter --filename=stage_lock_mock.go

// Repositories (ports). Each returns ErrNotFound (wrapped) when the entity
// does not exist; callers translate that into a 404-class error one layer up.

type ApplicationRepository interface {
	Create(ctx Context, a Application) (int64, error)
	Get(ctx Context, id int64) (Application, error)
	ListByUser(ctx Context, userID int64) ([]Application, error)
	UpdateStatus(ctx Context, id int64, status Status) error
	UpdateCV(ctx Context, id int64, cvPath string) error
	Delete(ctx Context, id int64) error
}

type VacancyRepository interface {
	Create(ctx Context, v Vacancy) (int64, error)
	// Get returns the vacancy with its skills fully materialized so the
	// pipeline never triggers incidental I/O through attribute access.
	Get(ctx Context, id int64) (Vacancy, error)
}

type PreInterviewRepository interface {
	Create(ctx Context, r PreInterviewResult) (int64, error)
	GetByApplication(ctx Context, applicationID int64) (PreInterviewResult, error)
}

type PostInterviewRepository interface {
	Create(ctx Context, r PostInterviewResult) (int64, error)
	GetByApplication(ctx Context, applicationID int64) (PostInterviewResult, error)
}

type SkillResultRepository interface {
	BulkCreate(ctx Context, applicationID int64, results []SkillResult) error
	ListByApplication(ctx Context, applicationID int64) ([]SkillResult, error)
}

type InterviewMessageRepository interface {
	Append(ctx Context, m InterviewMessage) (int64, error)
	// ListByApplication returns the transcript in original append order.
	ListByApplication(ctx Context, applicationID int64) ([]InterviewMessage, error)
}

// Stage identifies one assessment pipeline stage.
type Stage string

const (
	StagePreInterview  Stage = "pre_interview"
	StagePostInterview Stage = "post_interview"
)

// AssessmentTask is the queue payload that triggers one pipeline stage for
// one application.
type AssessmentTask struct {
	Stage         Stage `json:"stage"`
	ApplicationID int64 `json:"application_id"`
}

// Queue (port)

type Queue interface {
	EnqueueAssessment(ctx Context, task AssessmentTask) (string, error)
}

// ScoreRequest is the single-operation contract of the scoring engine:
// structured in, structured out, or failure. Schema restates the exact JSON
// shape the engine must return; the adapter guarantees the returned raw
// message conforms or fails outright.
type ScoreRequest struct {
	System      string
	User        string
	Attachments []Attachment
	SchemaName  string
	Schema      json.RawMessage
}

// ScoringClient (port)

type ScoringClient interface {
	ScoreJSON(ctx Context, req ScoreRequest) (json.RawMessage, error)
}

// TextExtractor (port)
// ExtractText returns the concatenated text layer of a PDF at path; an empty
// string (scanned image PDF) is a valid result, not an error.
type TextExtractor interface {
	ExtractText(ctx Context, path string) (string, error)
}

// FileConverter (port)
// ConvertToPDF normalizes an uploaded office document to PDF and returns the
// new path. Unsupported extensions are rejected before any processing.
type FileConverter interface {
	ConvertToPDF(ctx Context, path string) (string, error)
}

// AttachmentLoader (port)
// LoadAttachment reads a stored file into an Attachment with its MIME type
// sniffed from content, ready to be shipped to the scoring engine.
type AttachmentLoader interface {
	LoadAttachment(path string) (Attachment, error)
}

// SignalCollector (port)
// Collect fetches and normalizes public profile signals. Errors are reported
// to the caller; the pipeline's policy is to treat them as absent signals.
type SignalCollector interface {
	Collect(ctx Context, profileURL string) (*GithubStats, error)
}

// StageLock (port)
// At-most-once guard for concurrent re-entry of the same stage for the same
// application. Acquire returns false when another run holds the lock.
type StageLock interface {
	Acquire(ctx Context, stage Stage, applicationID int64) (bool, error)
	Release(ctx Context, stage Stage, applicationID int64) error
}
