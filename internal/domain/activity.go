package domain

// Texts shown by the activity view.
const (
	ActivityJustViewed  = "Just viewed"
	ActivityPlaceholder = "No activity recorded yet"
)

// ActivityRow is one rendered entry of the activity history.
type ActivityRow struct {
	Label    string `json:"label"`
	Subtitle string `json:"subtitle"`
}

// ActivityView is the rendered activity history, most recent first.
// Empty is set when there is nothing to show, in which case Placeholder
// carries the text to display instead of the list.
type ActivityView struct {
	Rows        []ActivityRow `json:"rows"`
	Empty       bool          `json:"empty"`
	Placeholder string        `json:"placeholder,omitempty"`
}

// Labels returns the row labels in display order.
func (v ActivityView) Labels() []string {
	out := make([]string, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = r.Label
	}
	return out
}
