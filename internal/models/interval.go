package models

// Interval is a named execution region [Start, End], both bounds inclusive, in nanoseconds.
type Interval struct {
	Name       string
	Start      int64
	End        int64
	UniqueName string
}

// Contains reports whether t falls inside the closed interval.
func (i Interval) Contains(t int64) bool {
	return i.Start <= t && t <= i.End
}

// Label is the name samples inside the interval are attributed to.
func (i Interval) Label() string {
	if i.UniqueName != "" {
		return i.UniqueName
	}
	return i.Name
}
