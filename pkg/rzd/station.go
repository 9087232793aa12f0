package rzd

import "fmt"

// StationList is the result of a station code lookup, ordered by the
// upstream ranking.
type StationList = ResultList[Station]

// Station pairs a display name with the upstream station code.
type Station struct {
	Name string
	Code StationCode
}

func (s Station) String() string {
	return fmt.Sprintf("%s - %s", s.Code, s.Name)
}
