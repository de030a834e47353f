// Package pipeline orchestrates the generation flow the CLI drives: load a
// project, analyze the brief, generate the script, synthesize the storyboard,
// and assemble the preview package. Every step is a pure function of the
// stored brief, so repeated runs produce identical artifacts apart from the
// export timestamp.
package pipeline
