// Package domain holds the core entities, ports and error taxonomy of the
// recruiting assessment pipeline.
package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUnsupportedMedia = errors.New("unsupported media")
	ErrUpstreamTimeout  = errors.New("upstream timeout")
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrInternal         = errors.New("internal error")
)

// Status is the application lifecycle state driven by the assessment pipeline.
type Status string

// Pipeline stages in order; approved/rejected and rejected_for_interview are
// terminal, in_interview is only reachable from approved_for_interview.
const (
	StatusPending              Status = "pending"
	StatusApprovedForInterview Status = "approved_for_interview"
	StatusRejectedForInterview Status = "rejected_for_interview"
	StatusInInterview          Status = "in_interview"
	StatusApproved             Status = "approved"
	StatusRejected             Status = "rejected"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApprovedForInterview, StatusRejectedForInterview,
		StatusInInterview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the pipeline defines no further automatic
// transition from s.
func (s Status) Terminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusRejectedForInterview:
		return true
	}
	return false
}

// NextAfterScreening derives the status that follows the pre-interview stage.
func NextAfterScreening(recommended bool) Status {
	if recommended {
		return StatusApprovedForInterview
	}
	return StatusRejectedForInterview
}

// NextAfterInterview derives the terminal status that follows the
// post-interview stage.
func NextAfterInterview(recommended bool) Status {
	if recommended {
		return StatusApproved
	}
	return StatusRejected
}

// Application is one candidate's submission to one vacancy. The pipeline owns
// its status; intake creates it, administrative CRUD may delete it.
type Application struct {
	ID         int64
	CVPath     string // path to the CV, already normalized to PDF
	Status     Status
	ProfileURL *string
	UserID     int64
	VacancyID  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Vacancy is the role definition. Read-only from the pipeline's perspective;
// repositories return it with Skills fully materialized.
type Vacancy struct {
	ID                 int64
	Name               string
	Description        string
	City               string
	WeeklyHours        int
	RequiredExperience int // years
	Salary             *float64
	OpenTime           time.Time
	CloseTime          *time.Time
	IsActive           bool
	UserID             int64
	Skills             []Skill
}

// Skill is a named, weighted requirement attached to a vacancy. Weights are
// relative importance factors and are not required to sum to 1.
type Skill struct {
	ID        int64
	VacancyID int64
	Name      string
	Weight    float64
	Details   string
}

// SkillResult is a per-application, per-skill scored outcome. The weight is
// denormalized at creation time so historical results stay stable when the
// skill's weight later changes. Invariant: Score in [0,1].
type SkillResult struct {
	ID            int64
	ApplicationID int64
	SkillID       int64
	Score         float64
	Weight        float64
	CreatedAt     time.Time
}

// PreInterviewResult is the CV-screening outcome, one-to-one with an
// application. Invariant: Score in [0,1].
type PreInterviewResult struct {
	ID            int64
	ApplicationID int64
	IsRecommended bool
	Score         float64
	Reason        string
	CreatedAt     time.Time
}

// PostInterviewResult is the interview-scoring outcome, one-to-one with an
// application. Score is the weighted aggregate over skill results.
type PostInterviewResult struct {
	ID                int64
	ApplicationID     int64
	IsRecommended     bool
	Score             float64
	InterviewSummary  string
	CandidateResponse string
	Summary           string
	EmotionalAnalysis string
	CandidateRoadmap  string
	CreatedAt         time.Time
}

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// InterviewMessage is one ordered transcript entry of a live interview
// session; append-only, consumed in full and in order by the post-interview
// stage.
type InterviewMessage struct {
	ID            int64
	ApplicationID int64
	Role          string
	Message       string
	CreatedAt     time.Time
}

// Stat is a single named metric parsed from an external profile. Number is
// set when the rendered value is numeric. Icon carries raw SVG markup and is
// empty when no icon could be paired.
type Stat struct {
	Name   string
	Value  string
	Number *int64
	Icon   string
}

// GithubStats is an ephemeral normalized summary of public profile signals.
// Computed fresh on each pipeline run, never persisted.
type GithubStats struct {
	StatsURL     string
	FullName     string
	Rank         string // one of A+, A, B+, B, C+, C, D+, D, E+, E, F
	RankProgress int    // [0,100]
	Stats        []Stat
}

// Attachment is a raw file handed to the scoring engine alongside a prompt.
type Attachment struct {
	Filename string
	MIME     string
	Data     []byte
}

// Context is an alias so the domain package does not spell out std context in
// every port signature; adapters and usecases pass context.Context through.
type Context = context.Context
