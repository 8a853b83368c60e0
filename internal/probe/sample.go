package probe

// Rect is a point-in-time snapshot of an element's bounding box.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Sample is the diagnostic record behind one verdict: the raw computed
// style strings, both geometry snapshots, and the derived signals.
type Sample struct {
	Exists             bool   `json:"exists"`
	HasHandle          bool   `json:"has_handle"`
	AnimationName      string `json:"animation_name,omitempty"`
	AnimationPlayState string `json:"animation_play_state,omitempty"`
	TransitionProperty string `json:"transition_property,omitempty"`
	TransitionDuration string `json:"transition_duration,omitempty"`
	ActiveAnimation    bool   `json:"active_animation"`
	PositionChanged    bool   `json:"position_changed"`
	InitialRect        Rect   `json:"initial_rect"`
	NewRect            Rect   `json:"new_rect"`
	Err                string `json:"error,omitempty"`
}

// Verdict is the outcome of one probe. Produced fresh on every probe,
// never persisted.
type Verdict struct {
	Stable bool   `json:"stable"`
	Sample Sample `json:"sample"`
}

// activeAnimation reports whether the computed style indicates motion in
// progress. A named animation counts unless paused. A transition counts
// only when it targets a specific property with a non-zero duration:
// "all" is too imprecise a signal to trust, it is the common case of
// decorative hover transitions that should not block interaction.
func activeAnimation(s Sample) bool {
	if s.AnimationName != "none" && s.AnimationName != "" && s.AnimationPlayState != "paused" {
		return true
	}
	if s.TransitionProperty != "all" && s.TransitionProperty != "none" && s.TransitionProperty != "" &&
		s.TransitionDuration != "0s" && s.TransitionDuration != "" {
		return true
	}
	return false
}

// rectChanged compares the two geometry snapshots field by field. Exact
// equality, no epsilon: sub-pixel drift between samples is still motion.
func rectChanged(a, b Rect) bool {
	return a.Top != b.Top || a.Left != b.Left || a.Width != b.Width || a.Height != b.Height
}
