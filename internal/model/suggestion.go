package model

// Suggestion is a candidate micro-habit produced by normalizing free text
// from the suggestion collaborator. Suggestions are ephemeral: accepted ones
// become habit Routines, the rest are discarded.
type Suggestion struct {
	Text        string // cleaned action phrase, e.g. "2분 걷기"
	Emoji       string
	Description string
}

// SuggestionRequest carries the neighbouring tasks of the insertion point,
// used as context for the suggestion prompt. Either side may be empty at the
// ends of the list.
type SuggestionRequest struct {
	PrevTask string
	NextTask string
}

// Context joins the non-empty neighbouring tasks for prompt assembly.
func (r SuggestionRequest) Context() string {
	switch {
	case r.PrevTask != "" && r.NextTask != "":
		return r.PrevTask + ", " + r.NextTask
	case r.PrevTask != "":
		return r.PrevTask
	default:
		return r.NextTask
	}
}
