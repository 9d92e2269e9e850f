package main

import (
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"repkit/internal/plan"
	"repkit/internal/services/catalog"
	"repkit/internal/textutil"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var exercisesFlag int
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "plan <muscle> [muscle...]",
		Short: "Compose a workout plan for the given muscle groups",
		Long: `Compose a workout plan. Each argument names one muscle group; groups are
processed in order and never repeat an exercise selected by an earlier group.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			index, err := ctx.loadIndex()
			if err != nil {
				return err
			}
			generator, err := ctx.insightsClient()
			if err != nil {
				return err
			}
			cache, err := ctx.openCache()
			if err != nil {
				return err
			}
			defer cache.Close()

			perMuscle := exercisesFlag
			if !cmd.Flags().Changed("exercises") {
				perMuscle = cfg.Plan.ExercisesPerMuscle
			}

			muscles := make([]catalog.MuscleGroup, 0, len(args))
			for _, arg := range args {
				label := strings.TrimSpace(arg)
				muscles = append(muscles, catalog.MuscleGroup{
					ID:    textutil.Slugify(label),
					Label: label,
				})
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			composer := plan.New(index, generator,
				plan.WithCache(cache),
				plan.WithLogger(ctx.ensureLogger()),
				plan.WithEnrichmentLimit(cfg.Plan.EnrichmentConcurrency))

			result, err := composer.Compose(runCtx, plan.Request{
				Muscles:            muscles,
				ExercisesPerMuscle: perMuscle,
			})
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd.OutOrStdout(), planPayload(result))
			}
			renderPlan(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&exercisesFlag, "exercises", "n", 0, "Exercises per muscle group (0 takes all)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the plan as JSON")
	return cmd
}

type planJSON struct {
	ID        string            `json:"id"`
	CreatedAt string            `json:"created_at"`
	Sections  []planSectionJSON `json:"sections"`
}

type planSectionJSON struct {
	Muscle        string             `json:"muscle"`
	Exercises     []planExerciseJSON `json:"exercises"`
	Focus         string             `json:"focus,omitempty"`
	Adaptation    string             `json:"adaptation_goal,omitempty"`
	WarmupTip     string             `json:"warmup_tip,omitempty"`
	OverviewError string             `json:"overview_error,omitempty"`
	Error         string             `json:"error,omitempty"`
}

type planExerciseJSON struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sets        string   `json:"sets,omitempty"`
	Reps        string   `json:"reps,omitempty"`
	Tempo       string   `json:"tempo,omitempty"`
	Rest        string   `json:"rest,omitempty"`
	Equipment   string   `json:"equipment,omitempty"`
	Cues        []string `json:"cues,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
	SafetyNotes string   `json:"safety_notes,omitempty"`
	PhotoURLs   []string `json:"photo_urls,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Steps       []string `json:"steps,omitempty"`
	DetailError string   `json:"detail_error,omitempty"`
}

func planPayload(result plan.Plan) planJSON {
	payload := planJSON{
		ID:        result.ID,
		CreatedAt: result.CreatedAt.Format(time.RFC3339),
	}
	for _, section := range result.Sections {
		sectionJSON := planSectionJSON{
			Muscle:        section.Muscle.Label,
			OverviewError: section.OverviewError,
			Error:         section.Error,
		}
		if section.Overview != nil {
			sectionJSON.Focus = section.Overview.Focus
			sectionJSON.Adaptation = section.Overview.AdaptationGoal
			sectionJSON.WarmupTip = section.Overview.WarmupTip
		}
		for _, exercise := range section.Exercises {
			sectionJSON.Exercises = append(sectionJSON.Exercises, planExerciseJSON{
				ID:          exercise.ID,
				Name:        exercise.Name,
				Description: exercise.Description,
				Sets:        exercise.Sets,
				Reps:        exercise.Reps,
				Tempo:       exercise.Tempo,
				Rest:        exercise.Rest,
				Equipment:   exercise.Equipment,
				Cues:        exercise.Cues,
				Benefits:    exercise.Benefits,
				SafetyNotes: exercise.SafetyNotes,
				PhotoURLs:   exercise.PhotoURLs,
				Difficulty:  exercise.Difficulty,
				Steps:       exercise.LibrarySteps,
				DetailError: exercise.DetailError,
			})
		}
		payload.Sections = append(payload.Sections, sectionJSON)
	}
	return payload
}

func renderPlan(out io.Writer, result plan.Plan) {
	for i, section := range result.Sections {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, sectionHeading(out, section.Muscle.Label, len(section.Exercises)))
		if section.Error != "" {
			fmt.Fprintf(out, "  error: %s\n", section.Error)
			continue
		}
		if section.Overview != nil {
			if section.Overview.Focus != "" {
				fmt.Fprintf(out, "  focus: %s\n", section.Overview.Focus)
			}
			if section.Overview.WarmupTip != "" {
				fmt.Fprintf(out, "  warmup: %s\n", section.Overview.WarmupTip)
			}
		} else if section.OverviewError != "" {
			fmt.Fprintf(out, "  overview unavailable: %s\n", section.OverviewError)
		}
		fmt.Fprintln(out, planExerciseTable(section.Exercises))
	}
}
