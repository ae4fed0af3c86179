// Package lesson holds the fixed teaching content assembled into the
// blood-pressure notebook.
//
// Segment pressures and physiological thresholds live only inside snippet
// text. Nothing in this package evaluates them.
package lesson

import "github.com/sofmeright/nbforge/src/notebook"

// DefaultFilename is the output file written when no path is configured.
const DefaultFilename = "blood_pressure_exercise_with_answers.ipynb"

// BloodPressure assembles the lesson: introduction, three plotting snippets
// (flow vs radius, pressure profile, abnormal detection) and the
// questions-and-answers section.
func BloodPressure() notebook.Document {
	return notebook.Assemble(
		notebook.NewNarrative(introduction),
		notebook.NewSnippet(poiseuilleLaw),
		notebook.NewSnippet(pressureProfile),
		notebook.NewSnippet(abnormalDetection),
		notebook.NewNarrative(questionsAndAnswers),
	)
}
