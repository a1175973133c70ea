package commons

import "strings"

type Phase int

const (
	Construction Phase = iota
	Marketing
	Sales
	Administration
	Maintenance
	Other
)

var phaseNames = [...]string{"Construction", "Marketing", "Sales", "Administration", "Maintenance", "Other"}

func (p Phase) String() string {
	if p < Construction || p > Other {
		return phaseNames[Other]
	}
	return phaseNames[p]
}

// ParsePhase matches case-insensitively and falls back to Other.
func ParsePhase(s string) Phase {
	for i, name := range phaseNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Phase(i)
		}
	}
	return Other
}
