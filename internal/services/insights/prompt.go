package insights

import (
	"fmt"
	"strings"
)

const exerciseSystemPrompt = `You are a strength coach writing concise, safe exercise guidance.
Respond with JSON only, using exactly these keys:
{"description": string, "sets": string, "reps": string, "tempo": string, "rest": string, "equipment": string, "cues": [string], "benefits": [string], "safety_notes": string}
Keep the description under 80 words. Base everything on the provided instructions; do not invent equipment the movement does not need.`

const overviewSystemPrompt = `You are a strength coach summarizing one section of a workout plan.
Respond with JSON only, using exactly these keys:
{"focus": string, "adaptation_goal": string, "warmup_tip": string}
Each value is one or two sentences.`

func exerciseUserPrompt(req ExerciseRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exercise: %s\n", req.ExerciseName)
	if req.MuscleLabel != "" {
		fmt.Fprintf(&b, "Target muscle: %s\n", req.MuscleLabel)
	}
	if req.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	}
	if len(req.Instructions) > 0 {
		b.WriteString("Instructions:\n")
		for i, step := range req.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}
	if len(req.Notes) > 0 {
		b.WriteString("Coaching notes:\n")
		for _, note := range req.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}
	return b.String()
}

func overviewUserPrompt(req OverviewRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Muscle group: %s\n", req.MuscleLabel)
	b.WriteString("Exercises in this section:\n")
	for _, name := range req.ExerciseNames {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	return b.String()
}
