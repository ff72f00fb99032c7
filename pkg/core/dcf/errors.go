package dcf

import (
	"errors"
)

// Error taxonomy. Each failure kind is fatal to the specific run that raised
// it; callers branch with errors.Is.
var (
	ErrInvalidAssumptions = errors.New("invalid assumptions")
	ErrInvalidRate        = errors.New("invalid discount rate")
	ErrInvalidCompanyData = errors.New("invalid company data")
)
