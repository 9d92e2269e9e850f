package insights

// ExerciseRequest carries the library context the generator writes against.
type ExerciseRequest struct {
	ExerciseName string
	MuscleLabel  string
	Instructions []string
	Difficulty   string
	Notes        []string
}

// ExerciseInsights is the coaching content produced for one exercise.
type ExerciseInsights struct {
	Description string   `json:"description"`
	Sets        string   `json:"sets"`
	Reps        string   `json:"reps"`
	Tempo       string   `json:"tempo"`
	Rest        string   `json:"rest"`
	Equipment   string   `json:"equipment"`
	Cues        []string `json:"cues"`
	Benefits    []string `json:"benefits"`
	SafetyNotes string   `json:"safety_notes"`
}

// OverviewRequest asks for a summary of one plan section.
type OverviewRequest struct {
	MuscleLabel   string
	ExerciseNames []string
}

// SectionOverview is the per-muscle summary produced by the summarizer.
type SectionOverview struct {
	Focus          string `json:"focus"`
	AdaptationGoal string `json:"adaptation_goal"`
	WarmupTip      string `json:"warmup_tip"`
}
