package rzd

import (
	"fmt"
	"strings"
)

// TripStations lists the stops a train makes, in physical stop order
// along the route. The order encodes direction of travel and is never
// re-sorted.
type TripStations struct {
	TrainNumber string
	Stops       ResultList[TripStop]
}

func (t TripStations) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stops of train %q:\n", t.TrainNumber)
	b.WriteString(t.Stops.String())

	return b.String()
}

// TripStop is one stop along a train route. Departure is nil at the
// terminal stop, arrival is nil at the origin.
type TripStop struct {
	Station string
	Code    StationCode

	// Days is how many calendar days pass before the train reaches this
	// stop.
	Days int

	Departure *TrainTime
	Arrival   *TrainTime
}

func (s TripStop) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\t%q %s,", s.Station, s.Code)
	if s.Departure != nil {
		fmt.Fprintf(&b, " departs %s,", s.Departure)
	}
	if s.Arrival != nil {
		fmt.Fprintf(&b, " arrives %s,", s.Arrival)
	}
	fmt.Fprintf(&b, " day %d on the way", s.Days)

	return b.String()
}
