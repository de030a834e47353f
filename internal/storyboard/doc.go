// Package storyboard derives one visual frame per script scene: a shot
// description composed from the scene role and brief keywords, a mood cue
// mapped from the tone class, and an aspect ratio selected by the brief's
// platform hint. Frames are emitted in scene order with matching indices.
package storyboard
