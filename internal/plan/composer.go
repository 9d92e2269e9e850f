package plan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"repkit/internal/insightcache"
	"repkit/internal/library"
	"repkit/internal/logging"
	"repkit/internal/services"
	"repkit/internal/services/catalog"
	"repkit/internal/services/insights"
)

// InsightGenerator produces coaching content for exercises and sections. The
// insights client satisfies it; tests substitute fakes.
type InsightGenerator interface {
	GenerateExerciseInsights(ctx context.Context, req insights.ExerciseRequest) (insights.ExerciseInsights, error)
	GenerateSectionOverview(ctx context.Context, req insights.OverviewRequest) (insights.SectionOverview, error)
}

// Request describes one plan composition.
type Request struct {
	Muscles []catalog.MuscleGroup
	// ExercisesPerMuscle caps the selection per muscle group. Zero or
	// negative takes every available exercise.
	ExercisesPerMuscle int
}

// Composer builds plans against one immutable library index. Muscle groups
// are processed sequentially so selection observes the cumulative claimed
// set; enrichment within a group fans out concurrently.
type Composer struct {
	index       *library.Index
	generator   InsightGenerator
	cache       *insightcache.Cache
	logger      *slog.Logger
	enrichLimit int
}

// Option configures optional Composer behavior.
type Option func(*Composer)

// WithCache consults and populates the insight cache around generator calls.
func WithCache(cache *insightcache.Cache) Option {
	return func(c *Composer) { c.cache = cache }
}

// WithLogger attaches a logger for composition progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) { c.logger = logger }
}

// WithEnrichmentLimit bounds concurrent enrichment calls within one muscle
// group. Zero or negative means unbounded.
func WithEnrichmentLimit(limit int) Option {
	return func(c *Composer) { c.enrichLimit = limit }
}

// New constructs a composer over the given index and generator.
func New(index *library.Index, generator InsightGenerator, opts ...Option) *Composer {
	composer := &Composer{index: index, generator: generator}
	for _, opt := range opts {
		opt(composer)
	}
	composer.logger = logging.NewComponentLogger(composer.logger, "plan")
	return composer
}

// Compose builds a plan for the requested muscle groups. All resolution,
// selection, and enrichment failures are converted to data on the returned
// plan; Compose itself fails only on cancellation or malformed input.
func (c *Composer) Compose(ctx context.Context, req Request) (Plan, error) {
	if len(req.Muscles) == 0 {
		return Plan{}, services.Wrap(services.ErrValidation, "plan", "compose", "no muscle groups requested", nil)
	}

	result := Plan{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
	claimed := make(map[string]struct{})

	for _, muscle := range req.Muscles {
		if err := ctx.Err(); err != nil {
			return Plan{}, err
		}

		doc, ok := c.index.ResolveMuscle(muscle.ID, muscle.Label)
		if !ok {
			c.logger.Warn("muscle group not in library",
				logging.String("muscle", muscle.Label))
			result.Sections = append(result.Sections, Section{
				Muscle: muscle,
				Error:  fmt.Sprintf("no library document matches muscle group %q", muscle.Label),
			})
			continue
		}

		selected := c.selectExercises(doc, claimed, req.ExercisesPerMuscle)
		if len(selected) == 0 {
			// Every exercise was claimed by an earlier section. The group
			// contributes nothing, so it gets no section.
			c.logger.Debug("muscle group fully deduplicated",
				logging.String("muscle", doc.Label))
			continue
		}

		started := time.Now()
		section := Section{Muscle: muscle}
		exercises, err := c.enrichAll(ctx, selected)
		if err != nil {
			return Plan{}, err
		}
		section.Exercises = exercises

		overview, err := c.sectionOverview(ctx, doc, selected)
		switch {
		case err == nil:
			section.Overview = &overview
		case services.IsCancellation(err):
			return Plan{}, err
		default:
			section.OverviewError = err.Error()
		}

		c.logger.Info("section composed",
			logging.String("muscle", doc.Label),
			logging.Int("exercises", len(section.Exercises)),
			logging.Duration("elapsed", time.Since(started)))
		result.Sections = append(result.Sections, section)
	}

	return result, nil
}

// selectExercises picks up to limit unclaimed exercises from the muscle's
// document, claiming them immediately so later groups never double-select.
// Exercises resolve through their canonical entry first, collapsing
// presentation variants onto one claimable id.
func (c *Composer) selectExercises(doc *library.Muscle, claimed map[string]struct{}, limit int) []*library.Entry {
	var selected []*library.Entry
	for _, entry := range doc.Exercises {
		canonical := c.index.Canonical(entry)
		if _, taken := claimed[canonical.ID]; taken {
			continue
		}
		claimed[canonical.ID] = struct{}{}
		selected = append(selected, canonical)
		if limit > 0 && len(selected) >= limit {
			break
		}
	}
	return selected
}

// enrichAll fans out one generator call per exercise and waits for the
// group. Per-exercise failures degrade to fallback content; only
// cancellation aborts.
func (c *Composer) enrichAll(ctx context.Context, entries []*library.Entry) ([]EnrichedExercise, error) {
	results := make([]EnrichedExercise, len(entries))
	group, groupCtx := errgroup.WithContext(ctx)
	if c.enrichLimit > 0 {
		group.SetLimit(c.enrichLimit)
	}
	for i, entry := range entries {
		i, entry := i, entry
		group.Go(func() error {
			enriched, err := c.enrich(groupCtx, entry)
			if err != nil {
				return err
			}
			results[i] = enriched
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Composer) enrich(ctx context.Context, entry *library.Entry) (EnrichedExercise, error) {
	if payload, hit := c.cache.LookupExercise(ctx, entry.ID); hit {
		return buildEnriched(entry, payload), nil
	}

	payload, err := c.generator.GenerateExerciseInsights(ctx, insights.ExerciseRequest{
		ExerciseName: entry.Name,
		MuscleLabel:  entry.MuscleLabel,
		Instructions: entry.Instructions,
		Difficulty:   entry.Difficulty,
		Notes:        entry.Notes,
	})
	if err != nil {
		if services.IsCancellation(err) {
			return EnrichedExercise{}, err
		}
		c.logger.Warn("enrichment failed, using library fallback",
			logging.String("exercise", entry.Name), logging.Error(err))
		return fallbackEnriched(entry, err), nil
	}

	if storeErr := c.cache.StoreExercise(ctx, entry.ID, payload); storeErr != nil {
		c.logger.Warn("caching insights failed", logging.Error(storeErr))
	}
	return buildEnriched(entry, payload), nil
}

func (c *Composer) sectionOverview(ctx context.Context, doc *library.Muscle, selected []*library.Entry) (insights.SectionOverview, error) {
	if overview, hit := c.cache.LookupOverview(ctx, doc.Slug); hit {
		return overview, nil
	}

	names := make([]string, len(selected))
	for i, entry := range selected {
		names[i] = entry.Name
	}
	overview, err := c.generator.GenerateSectionOverview(ctx, insights.OverviewRequest{
		MuscleLabel:   doc.Label,
		ExerciseNames: names,
	})
	if err != nil {
		return insights.SectionOverview{}, err
	}

	if storeErr := c.cache.StoreOverview(ctx, doc.Slug, overview); storeErr != nil {
		c.logger.Warn("caching overview failed", logging.Error(storeErr))
	}
	return overview, nil
}

func buildEnriched(entry *library.Entry, payload insights.ExerciseInsights) EnrichedExercise {
	description := strings.TrimSpace(payload.Description)
	if description == "" {
		description = entry.FallbackDescription()
	}
	return EnrichedExercise{
		ID:           entry.ID,
		Name:         entry.Name,
		Description:  description,
		Sets:         payload.Sets,
		Reps:         payload.Reps,
		Tempo:        payload.Tempo,
		Rest:         payload.Rest,
		Equipment:    payload.Equipment,
		Cues:         payload.Cues,
		Benefits:     payload.Benefits,
		SafetyNotes:  payload.SafetyNotes,
		PhotoURLs:    append([]string(nil), entry.Media...),
		Difficulty:   entry.Difficulty,
		LibrarySteps: append([]string(nil), entry.Instructions...),
	}
}

func fallbackEnriched(entry *library.Entry, cause error) EnrichedExercise {
	return EnrichedExercise{
		ID:           entry.ID,
		Name:         entry.Name,
		Description:  entry.FallbackDescription(),
		PhotoURLs:    append([]string(nil), entry.Media...),
		Difficulty:   entry.Difficulty,
		LibrarySteps: append([]string(nil), entry.Instructions...),
		DetailError:  cause.Error(),
	}
}
