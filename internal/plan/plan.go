package plan

import (
	"time"

	"repkit/internal/services/catalog"
	"repkit/internal/services/insights"
)

// EnrichedExercise is one exercise of a plan section, combining library data
// with generated coaching content. When enrichment fails, DetailError is set
// and the coaching fields fall back to library-derived values; the exercise
// is never dropped.
type EnrichedExercise struct {
	ID          string
	Name        string
	Description string
	Sets        string
	Reps        string
	Tempo       string
	Rest        string
	Equipment   string
	Cues        []string
	Benefits    []string
	SafetyNotes string

	PhotoURLs    []string
	Difficulty   string
	LibrarySteps []string

	DetailError string
}

// Section is the plan output for one muscle group. Overview is nil when the
// summarizer failed (OverviewError carries the reason) or was never reached.
type Section struct {
	Muscle        catalog.MuscleGroup
	Exercises     []EnrichedExercise
	Overview      *insights.SectionOverview
	OverviewError string
	Error         string
}

// Plan is one composed workout plan.
type Plan struct {
	ID        string
	CreatedAt time.Time
	Sections  []Section
}

// ExerciseIDs returns every selected exercise id across the plan's sections,
// in section order. The composer guarantees the ids are distinct.
func (p Plan) ExerciseIDs() []string {
	var ids []string
	for _, section := range p.Sections {
		for _, exercise := range section.Exercises {
			ids = append(ids, exercise.ID)
		}
	}
	return ids
}
