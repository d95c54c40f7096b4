package booking

const ReasonInvalidDateRange = "Invalid date range"

type Availability struct {
	Available bool
	Reasons   []string
}

func AvailableResult() Availability {
	return Availability{Available: true, Reasons: []string{}}
}

func UnavailableResult(reasons ...string) Availability {
	return Availability{Available: false, Reasons: reasons}
}

func FromReasons(reasons []string) Availability {
	if len(reasons) == 0 {
		return AvailableResult()
	}
	return UnavailableResult(reasons...)
}
