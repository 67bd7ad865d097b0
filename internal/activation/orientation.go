package activation

// Orientation describes how a batch of examples is laid out in a matrix.
//
// The zero value, None, means "no requirement".
type Orientation int

const (
	// None carries no layout requirement.
	None Orientation = iota
	// ColumnsSpanFeatureSet lays out one example per row, one feature per column.
	ColumnsSpanFeatureSet
	// RowsSpanFeatureSet lays out one feature per row, one example per column.
	RowsSpanFeatureSet
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case None:
		return "NONE"
	case ColumnsSpanFeatureSet:
		return "COLUMNS_SPAN_FEATURE_SET"
	case RowsSpanFeatureSet:
		return "ROWS_SPAN_FEATURE_SET"
	default:
		return "UNKNOWN"
	}
}

// Required reports whether o constrains the layout.
func (o Orientation) Required() bool {
	return o != None
}
