package models

type ListSource int

const (
	ListSourceOFAC ListSource = iota
	ListSourceUN
	ListSourceHMT
	ListSourceEU
	ListSourceUnknown
)

func ListSourceFrom(s string) ListSource {
	switch s {
	case "OFAC":
		return ListSourceOFAC
	case "UN":
		return ListSourceUN
	case "HMT":
		return ListSourceHMT
	case "EU":
		return ListSourceEU
	}

	return ListSourceUnknown
}

func (s ListSource) String() string {
	switch s {
	case ListSourceOFAC:
		return "OFAC"
	case ListSourceUN:
		return "UN"
	case ListSourceHMT:
		return "HMT"
	case ListSourceEU:
		return "EU"
	}

	return "UNKNOWN"
}

// Priority weights a source's matches in risk scoring. Higher means more
// critical; an unrecognized source gets a conservative middle weight.
func (s ListSource) Priority() int {
	switch s {
	case ListSourceOFAC:
		return 100
	case ListSourceUN:
		return 90
	case ListSourceHMT:
		return 80
	case ListSourceEU:
		return 70
	}

	return 50
}
