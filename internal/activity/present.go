package activity

import "github.com/heartmarshall/traveleats-backend/internal/domain"

// Present renders a stored activity log for display: the newest entry
// first, one row per entry, duplicates kept. An empty log yields the
// placeholder view.
func Present(log []string) domain.ActivityView {
	if len(log) == 0 {
		return domain.ActivityView{
			Rows:        []domain.ActivityRow{},
			Empty:       true,
			Placeholder: domain.ActivityPlaceholder,
		}
	}

	rows := make([]domain.ActivityRow, len(log))
	for i, label := range log {
		rows[len(log)-1-i] = domain.ActivityRow{
			Label:    label,
			Subtitle: domain.ActivityJustViewed,
		}
	}
	return domain.ActivityView{Rows: rows}
}
