package reservation

// CanceledStatusCode marks the status that the calendar paints as canceled.
// It has no effect on how reservations are stored or synced.
const CanceledStatusCode = "term_canceled"

type Status struct {
	StatusID   int    `json:"statusId"`
	StatusName string `json:"statusName"`
	StatusCode string `json:"statusCode"`
}

func (s Status) IsCanceled() bool {
	return s.StatusCode == CanceledStatusCode
}

// Arrangement is the short-detail form used to populate the arrangement picker.
type Arrangement struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// CanceledStatusID looks up the id carrying CanceledStatusCode.
func CanceledStatusID(statuses []Status) (int, bool) {
	for _, s := range statuses {
		if s.IsCanceled() {
			return s.StatusID, true
		}
	}
	return 0, false
}
