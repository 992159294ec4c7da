package usecase

import "encoding/json"

// JSON schemas sent to the scoring engine via response_format. Each schema
// restates exactly the shape the matching judgment struct decodes, so that
// the engine-side strict mode and our strict decode enforce the same contract
// from both ends.

// PreInterviewSchemaName names the screening-stage response schema.
const PreInterviewSchemaName = "pre_interview_assessment"

// PreInterviewSchema is the screening-stage response schema.
var PreInterviewSchema = json.RawMessage(`{
  "type": "object",
  "additionalProperties": false,
  "required": ["is_recommended", "score", "reason"],
  "properties": {
    "is_recommended": {
      "type": "boolean",
      "description": "Whether the candidate is recommended for the interview stage."
    },
    "score": {
      "type": "number",
      "minimum": 0,
      "maximum": 1,
      "description": "float between 0.0-1.0; prefer two-decimal precision."
    },
    "reason": {
      "type": "string",
      "description": "Justification of assigned is_recommended and score values"
    }
  }
}`)

// PostInterviewSchemaName names the post-interview response schema.
const PostInterviewSchemaName = "post_interview_assessment"

// PostInterviewSchema is the post-interview response schema.
var PostInterviewSchema = json.RawMessage(`{
  "type": "object",
  "additionalProperties": false,
  "required": ["is_recommended", "skill_scores", "interview_summary", "candidate_response", "summary", "emotional_analysis", "candidate_roadmap"],
  "properties": {
    "is_recommended": {
      "type": "boolean",
      "description": "Whether the candidate is recommended for hire based on the overall evaluation."
    },
    "skill_scores": {
      "type": "array",
      "description": "Per-skill evaluation results. Echo skill_id and weight exactly as listed in the skill table.",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["skill_id", "weight", "score"],
        "properties": {
          "skill_id": {"type": "integer"},
          "weight": {"type": "number"},
          "score": {"type": "number", "minimum": 0, "maximum": 1}
        }
      }
    },
    "interview_summary": {
      "type": "string",
      "description": "Concise and neutral summary of the interview transcript capturing key strengths, gaps, and notable moments."
    },
    "candidate_response": {
      "type": "string",
      "description": "Polite, actionable message addressed to the candidate; excludes internal notes and sensitive decision rationale."
    },
    "summary": {
      "type": "string",
      "description": "Comprehensive internal summary aggregating the rationale for is_recommended, interpretation of skill scores, supporting evidence, and any risks or concerns."
    },
    "emotional_analysis": {
      "type": "string",
      "description": "Observations on the candidate's tone, confidence, and engagement throughout the interview."
    },
    "candidate_roadmap": {
      "type": "string",
      "description": "Suggested growth areas and next steps for the candidate regardless of the decision."
    }
  }
}`)

// VacancyFromFileSchemaName names the vacancy extraction response schema.
const VacancyFromFileSchemaName = "vacancy_from_file"

// VacancyFromFileSchema is the vacancy extraction response schema. Absent or
// ambiguous fields come back null.
var VacancyFromFileSchema = json.RawMessage(`{
  "type": "object",
  "additionalProperties": false,
  "required": ["name", "description", "salary", "city", "weekly_hours_occupancy", "required_experience"],
  "properties": {
    "name": {"type": ["string", "null"]},
    "description": {"type": ["string", "null"]},
    "salary": {"type": ["number", "null"]},
    "city": {"type": ["string", "null"]},
    "weekly_hours_occupancy": {"type": ["integer", "null"]},
    "required_experience": {"type": ["integer", "null"]}
  }
}`)

// PreJudgment is the decoded screening-stage engine response.
type PreJudgment struct {
	IsRecommended bool    `json:"is_recommended"`
	Score         float64 `json:"score" validate:"gte=0,lte=1"`
	Reason        string  `json:"reason" validate:"required"`
}

// SkillScore is one echoed per-skill entry in the post-interview response.
type SkillScore struct {
	SkillID int64   `json:"skill_id" validate:"required"`
	Weight  float64 `json:"weight" validate:"gte=0"`
	Score   float64 `json:"score" validate:"gte=0,lte=1"`
}

// PostJudgment is the decoded post-interview engine response.
type PostJudgment struct {
	IsRecommended     bool         `json:"is_recommended"`
	SkillScores       []SkillScore `json:"skill_scores" validate:"dive"`
	InterviewSummary  string       `json:"interview_summary" validate:"required"`
	CandidateResponse string       `json:"candidate_response" validate:"required"`
	Summary           string       `json:"summary" validate:"required"`
	EmotionalAnalysis string       `json:"emotional_analysis" validate:"required"`
	CandidateRoadmap  string       `json:"candidate_roadmap" validate:"required"`
}

// VacancyFromFile is the decoded vacancy extraction response. Every field is
// nullable: the engine is told to return null for anything the document does
// not state.
type VacancyFromFile struct {
	Name               *string  `json:"name"`
	Description        *string  `json:"description"`
	Salary             *float64 `json:"salary"`
	City               *string  `json:"city"`
	WeeklyHours        *int     `json:"weekly_hours_occupancy"`
	RequiredExperience *int     `json:"required_experience"`
}
