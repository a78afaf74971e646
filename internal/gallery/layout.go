package gallery

// GridLayout describes how the portfolio grid arranges a filtered set.
// Columns is the column count at the widest viewport; narrower viewports
// collapse down on the frontend. The lead spans let the first cell take
// extra room in large sets.
type GridLayout struct {
	Empty       bool `json:"empty"`
	Columns     int  `json:"columns"`
	Centered    bool `json:"centered"`
	LeadColSpan int  `json:"lead_col_span"`
	LeadRowSpan int  `json:"lead_row_span"`
}

// LayoutFor derives the grid variant from the number of visible images.
func LayoutFor(count int) GridLayout {
	switch {
	case count <= 0:
		return GridLayout{Empty: true}
	case count == 1:
		return GridLayout{Columns: 1, Centered: true, LeadColSpan: 1, LeadRowSpan: 2}
	case count == 2:
		return GridLayout{Columns: 2, LeadColSpan: 1, LeadRowSpan: 1}
	case count == 3:
		return GridLayout{Columns: 3, LeadColSpan: 1, LeadRowSpan: 1}
	case count < 6:
		return GridLayout{Columns: 4, LeadColSpan: 1, LeadRowSpan: 1}
	default:
		return GridLayout{Columns: 4, LeadColSpan: 2, LeadRowSpan: 2}
	}
}
