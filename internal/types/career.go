package types

import "github.com/go-playground/validator/v10"

// AnalyzeResumeRequest represents the request to extract skills from resume text.
type AnalyzeResumeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

// ResumeAnalysis represents the result of analyzing a resume.
type ResumeAnalysis struct {
	Skills          []string `json:"skills"`
	CurrentRole     string   `json:"current_role,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
}

// TrendingSkill is an externally computed importance/demand weighting for one skill.
type TrendingSkill struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
	JobCount   int     `json:"job_count"`
}

// MarketStats holds aggregate job-market statistics for a role.
type MarketStats struct {
	JobOpenings      int      `json:"job_openings"`
	AvgSalary        int      `json:"avg_salary"`
	GrowthRate       int      `json:"growth_rate"`
	RemotePercentage int      `json:"remote_percentage"`
	TopCompanies     []string `json:"top_companies"`
	TopLocations     []string `json:"top_locations"`
}

// MarketTrendsResponse represents the response for a market-trends query.
type MarketTrendsResponse struct {
	TrendingSkills []TrendingSkill `json:"trending_skills"`
	MarketStats
}

// GenerateRoadmapRequest represents the request to build a learning roadmap.
// Either current_skills or resume_text must be provided; if both are present
// the explicit skill list wins.
type GenerateRoadmapRequest struct {
	CurrentSkills []string `json:"current_skills,omitempty"`
	ResumeText    string   `json:"resume_text,omitempty"`
	TargetRole    string   `json:"target_role" validate:"required"`
	Location      string   `json:"location,omitempty"`
}

// Resource is a learning resource attached to a roadmap phase.
type Resource struct {
	Type          string  `json:"type"` // course or project
	Title         string  `json:"title"`
	Provider      string  `json:"provider,omitempty"`
	DurationHours int     `json:"duration_hours,omitempty"`
	URL           string  `json:"url,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Level         string  `json:"level,omitempty"`
}

// RoadmapPhase is one of the three sequential learning phases.
type RoadmapPhase struct {
	Name            string     `json:"name"`     // Foundation, Intermediate, Advanced
	Duration        string     `json:"duration"` // e.g. "0-3 months"
	Skills          []string   `json:"skills"`
	ImportanceLevel string     `json:"importance_level"` // High, Medium, Low
	Resources       []Resource `json:"resources"`
}

// Roadmap is a three-phase learning plan with readiness scoring.
type Roadmap struct {
	Phases             []RoadmapPhase `json:"phases"`
	TargetRole         string         `json:"target_role"`
	CurrentSkills      []string       `json:"current_skills"`
	MissingSkills      []string       `json:"missing_skills"`
	ReadinessScore     int            `json:"readiness_score"`
	SkillGapPercentage int            `json:"skill_gap_percentage"`
}

// ExplainRoadmapRequest wraps a roadmap for narrative explanation.
type ExplainRoadmapRequest struct {
	Roadmap Roadmap `json:"roadmap"`
}

// RoadmapExplanation is a short narrative plus project ideas for a roadmap.
type RoadmapExplanation struct {
	Narrative    string   `json:"narrative"`
	ProjectIdeas []string `json:"project_ideas"`
}

// ChatRequest represents a message to the career assistant.
type ChatRequest struct {
	Message  string `json:"message" validate:"required"`
	UserRole string `json:"user_role,omitempty"`
}

// ChatResponse represents the assistant's reply.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	UserRole string `json:"user_role,omitempty"`
}

// TranslationRequest represents a request to translate text.
type TranslationRequest struct {
	Text           string `json:"text" validate:"required"`
	TargetLanguage string `json:"target_language" validate:"required"`
	SourceLanguage string `json:"source_language,omitempty"`
}

// TranslationResponse represents the translation result.
type TranslationResponse struct {
	Success        bool   `json:"success"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// RoleDiscoveryRequest maps question IDs to the user's answers.
// An answer is either a string or a list of strings for multi-select questions.
type RoleDiscoveryRequest struct {
	Answers map[int]any `json:"answers" validate:"required,min=1"`
}

// RoleDiscoveryResult is the recommended role with supporting detail.
type RoleDiscoveryResult struct {
	Success          bool           `json:"success"`
	RecommendedRole  string         `json:"recommended_role"`
	Confidence       int            `json:"confidence"`
	SkillLevel       string         `json:"skill_level"` // beginner, intermediate, advanced
	Explanation      string         `json:"explanation"`
	KeyStrengths     []string       `json:"key_strengths"`
	MatchFactors     map[string]int `json:"match_factors,omitempty"`
	AlternativeRoles []string       `json:"alternative_roles,omitempty"`
	RequiredSkills   []string       `json:"required_skills,omitempty"`
	NextSteps        []string       `json:"next_steps"`
	LearningPath     string         `json:"learning_path,omitempty"`
	TimeToJobReady   string         `json:"time_to_job_ready,omitempty"`
}

// CourseProgressRequest marks a course complete or incomplete within a phase.
type CourseProgressRequest struct {
	Phase       string `json:"phase" validate:"required,oneof=foundation intermediate advanced"`
	CourseTitle string `json:"course_title" validate:"required"`
	PhaseTotal  int    `json:"phase_total,omitempty"`
}

// PhaseProgress tracks completion within a single roadmap phase.
type PhaseProgress struct {
	Completed []string `json:"completed"`
	Total     int      `json:"total"`
	Progress  float64  `json:"progress"`
}

// CourseProgressResponse reports the user's progress across all phases.
type CourseProgressResponse struct {
	Success          bool                     `json:"success"`
	Message          string                   `json:"message"`
	CompletedCourses []string                 `json:"completed_courses"`
	PhaseProgress    map[string]PhaseProgress `json:"phase_progress"`
	TotalProgress    float64                  `json:"total_progress"`
}

// Validate validates the AnalyzeResumeRequest using the validator.
func (r *AnalyzeResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateRoadmapRequest using the validator.
func (r *GenerateRoadmapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TranslationRequest using the validator.
func (r *TranslationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CourseProgressRequest using the validator.
func (r *CourseProgressRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
