package cli

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

const (
	// errNoScenarios is returned when a workbook yields no computable row.
	errNoScenarios = constError("no valid scenarios in workbook")

	// errNotTerminal is returned when the interactive calculator has no TTY.
	errNotTerminal = constError("interactive mode requires a terminal")

	// errConfigExists is returned by config init without --force.
	errConfigExists = constError("configuration file already exists, use --force to overwrite")
)
