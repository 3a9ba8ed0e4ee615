package domain

// ChartSelection is the drill-down state of the metrics screen: at most one
// selected month and one selected role. A selection filters the records
// feeding the other chart and the table.
type ChartSelection struct {
	Month string `json:"month,omitempty"` // YYYY-MM
	Role  string `json:"role,omitempty"`
}

// Toggle applies a bucket click: selecting a new bucket replaces the
// current one for that dimension, re-clicking the active bucket clears it.
func (s ChartSelection) Toggle(clicked ChartSelection) ChartSelection {
	if clicked.Month != "" {
		if s.Month == clicked.Month {
			s.Month = ""
		} else {
			s.Month = clicked.Month
		}
	}
	if clicked.Role != "" {
		if s.Role == clicked.Role {
			s.Role = ""
		} else {
			s.Role = clicked.Role
		}
	}
	return s
}
