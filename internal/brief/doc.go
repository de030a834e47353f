// Package brief models the user-supplied video brief and derives the
// deterministic signals the generation pipeline consumes.
//
// The analyzer extracts a stopword-filtered keyword list from the topic and
// description, classifies the free-text tone and audience fields against
// fixed vocabularies, and derives a pacing hint from the target duration.
// The same brief always produces the same analysis; there is no randomness
// and no external lookup.
package brief
