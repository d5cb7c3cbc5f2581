package enum

// SplitMode represents the farmer/employee revenue-sharing preset on a
// transaction line. "none" means the farmer keeps the full amount, "custom"
// means the ratios are entered by hand.
type SplitMode string

const (
	SplitModeNone   SplitMode = "none"
	SplitMode64     SplitMode = "6/4"
	SplitMode5545   SplitMode = "55/45"
	SplitModeHalf   SplitMode = "1/2"
	SplitMode5842   SplitMode = "58/42"
	SplitModeCustom SplitMode = "custom"
)

// IsValid reports whether the mode is a known preset
func (m SplitMode) IsValid() bool {
	switch m {
	case SplitModeNone, SplitMode64, SplitMode5545, SplitModeHalf, SplitMode5842, SplitModeCustom:
		return true
	}
	return false
}

// Ratios returns the preset farmer/employee ratios for the mode as decimal
// strings. "none" and "custom" have no preset and return blanks.
func (m SplitMode) Ratios() (farmerRatio, employeeRatio string) {
	switch m {
	case SplitMode64:
		return "0.6", "0.4"
	case SplitMode5545:
		return "0.55", "0.45"
	case SplitModeHalf:
		return "0.5", "0.5"
	case SplitMode5842:
		return "0.58", "0.42"
	}
	return "", ""
}
