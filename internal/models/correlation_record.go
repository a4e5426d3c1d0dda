package models

// UnknownRegion labels samples outside every interval.
const UnknownRegion = "Unknown Region"

// CorrelationRecord is one sample attributed to a region.
type CorrelationRecord struct {
	Timestamp int64 // nanoseconds
	Value     float64
	Region    string
}

func (r CorrelationRecord) IsUnknown() bool {
	return r.Region == UnknownRegion
}
