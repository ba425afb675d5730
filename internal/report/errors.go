package report

type constError string

func (e constError) Error() string { return string(e) }

// Import errors.
const (
	// ErrEmptySheet is returned when a workbook has no data rows.
	ErrEmptySheet constError = "sheet has no scenario rows"

	// ErrMissingColumn is returned when a required header is absent.
	ErrMissingColumn constError = "missing required column"

	// ErrInvalidCell is returned for a cell that cannot be parsed.
	ErrInvalidCell constError = "invalid cell value"
)
