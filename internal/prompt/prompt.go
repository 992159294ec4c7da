// Package prompt assembles the instruction documents sent to the scoring
// engine. Everything here is pure string work: same inputs, same output,
// no I/O and no clock.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hireline/hireline/internal/domain"
)

// GithubAbsent is rendered in place of profile signals when collection was
// skipped or failed. The engine sees the absence explicitly instead of an
// empty section.
const GithubAbsent = "No info found\n"

// VacancyBlock renders the vacancy as a fixed field block. Skills are
// comma-joined in vacancy order; an empty skill list renders as "N/A".
func VacancyBlock(v domain.Vacancy) string {
	names := make([]string, 0, len(v.Skills))
	for _, s := range v.Skills {
		names = append(names, s.Name)
	}
	skills := "N/A"
	if len(names) > 0 {
		skills = strings.Join(names, ", ")
	}
	salary := "N/A"
	if v.Salary != nil {
		salary = strconv.FormatFloat(*v.Salary, 'f', -1, 64)
	}
	var b strings.Builder
	b.WriteString("Vacancy:\n")
	fmt.Fprintf(&b, "- Name: %s\n", v.Name)
	fmt.Fprintf(&b, "- Description: %s\n", v.Description)
	fmt.Fprintf(&b, "- City: %s\n", v.City)
	fmt.Fprintf(&b, "- Weekly hours: %d\n", v.WeeklyHours)
	fmt.Fprintf(&b, "- Required experience (years): %d\n", v.RequiredExperience)
	fmt.Fprintf(&b, "- Salary: %s\n", salary)
	fmt.Fprintf(&b, "- Required skills: %s\n", skills)
	return b.String()
}

// GithubBlock renders collected profile signals as "name: value" lines, or
// the absence sentinel when stats is nil.
func GithubBlock(stats *domain.GithubStats) string {
	if stats == nil {
		return GithubAbsent
	}
	var b strings.Builder
	for _, st := range stats.Stats {
		fmt.Fprintf(&b, "%s: %s\n", st.Name, st.Value)
	}
	return b.String()
}

// TranscriptBlock renders the interview transcript in original order. Roles
// are tagged so the engine can distinguish interviewer and candidate turns.
func TranscriptBlock(msgs []domain.InterviewMessage) string {
	var b strings.Builder
	for _, m := range msgs {
		fmt.Fprintf(&b, "<message role=%q>%s</message>\n", m.Role, m.Message)
	}
	return b.String()
}

// PreResultBlock renders the pre-interview screening outcome for inclusion
// in the post-interview brief.
func PreResultBlock(r domain.PreInterviewResult) string {
	var b strings.Builder
	b.WriteString("Pre-interview screening result:\n")
	fmt.Fprintf(&b, "- Recommended: %t\n", r.IsRecommended)
	fmt.Fprintf(&b, "- Score: %s\n", strconv.FormatFloat(r.Score, 'f', -1, 64))
	fmt.Fprintf(&b, "- Reason: %s\n", r.Reason)
	return b.String()
}

// SkillTable lists every skill the engine must score. Each line carries the
// skill's id and weight, which the engine is told to echo back verbatim.
func SkillTable(skills []domain.Skill) string {
	var b strings.Builder
	b.WriteString("Skills to evaluate (echo skill_id and weight exactly as listed):\n")
	for _, s := range skills {
		fmt.Fprintf(&b, "- skill_id=%d weight=%s name=%s details=%s\n",
			s.ID, strconv.FormatFloat(s.Weight, 'f', -1, 64), s.Name, s.Details)
	}
	return b.String()
}

// PreInterviewSystem is the system message for the screening stage.
const PreInterviewSystem = "Act as a technical recruiter that evaluates a candidate strictly from the attached CV and github stats. " +
	"Return a structured decision only."

// PostInterviewSystem is the system message for the post-interview stage.
const PostInterviewSystem = "Act as a technical recruiter that evaluates a candidate strictly from the attached information. " +
	"Return a structured decision only."

// PreInterviewInstruction assembles the screening-stage user message. The CV
// travels separately as a file attachment.
func PreInterviewInstruction(v domain.Vacancy, stats *domain.GithubStats) string {
	var b strings.Builder
	b.WriteString("Evaluate the candidate for the following role and only use the attached CV and github stats for evidence. ")
	b.WriteString("Output the exact schema with is_recommended: bool, score: float between 0 and 1, ")
	b.WriteString("reason: justification of is_recommended and score values\n\n")
	b.WriteString(VacancyBlock(v))
	b.WriteString("Candidate github stats:\n")
	b.WriteString(GithubBlock(stats))
	return b.String()
}

// PostInterviewInstruction assembles the post-interview user message: skill
// table, transcript, prior screening result, and the scoring policy. The CV
// travels separately as a file attachment.
func PostInterviewInstruction(v domain.Vacancy, msgs []domain.InterviewMessage, pre domain.PreInterviewResult) string {
	var b strings.Builder
	b.WriteString("Evaluate the candidate's interview for the following role using the transcript, ")
	b.WriteString("the prior screening result and the attached CV as evidence.\n\n")
	b.WriteString("Output the exact schema with is_recommended: bool; ")
	b.WriteString("skill_scores: list of {skill_id: int, weight: float, score: float between 0 and 1}; ")
	b.WriteString("interview_summary, candidate_response, summary, emotional_analysis, candidate_roadmap: strings.\n")
	b.WriteString("Score every listed skill. When the transcript gives insufficient evidence for a skill, ")
	b.WriteString("assign a conservative mid-range score rather than an extreme. ")
	b.WriteString("candidate_response must be polite, actionable and addressed to the candidate in Russian; ")
	b.WriteString("it must not contain internal notes or decision rationale. ")
	b.WriteString("Write free-text fields in Russian.\n\n")
	b.WriteString(VacancyBlock(v))
	b.WriteString("\n")
	b.WriteString(SkillTable(v.Skills))
	b.WriteString("\n")
	b.WriteString(PreResultBlock(pre))
	b.WriteString("\nInterview transcript:\n<transcript>\n")
	b.WriteString(TranscriptBlock(msgs))
	b.WriteString("</transcript>\n")
	return b.String()
}
