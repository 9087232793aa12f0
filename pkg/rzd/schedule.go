package rzd

import (
	"fmt"
	"strings"
)

// RouteList is the result of a schedule search, one Route per searched
// direction.
type RouteList = ResultList[Route]

// Route groups the trains the upstream found between two stations.
type Route struct {
	FromName string
	FromCode StationCode
	ToName   string
	ToCode   StationCode

	Trains ResultList[ScheduleTrain]
}

func (r Route) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Route %q %s - %q %s\n\n", r.FromName, r.FromCode, r.ToName, r.ToCode)
	b.WriteString(r.Trains.String())

	return b.String()
}

// ScheduleTrain is a single train record in a schedule search result.
// Departure date and time are always present; the remaining date/time
// fields are nil when the upstream omitted them or sent something
// unparseable.
type ScheduleTrain struct {
	Number  string
	Brand   string
	Carrier string

	// Route endpoints of the train itself, which may extend beyond the
	// searched pair of stations.
	RouteFrom     string
	RouteFromCode StationCode
	RouteTo       string
	RouteToCode   StationCode

	FromStation   string
	DepartureDate *TrainDate
	DepartureTime *TrainTime
	ToStation     string
	ArrivalDate   *TrainDate
	ArrivalTime   *TrainTime

	Duration *TrainTime

	// Stops is the upstream's free-text stop summary for suburban
	// trains ("everywhere except ...").
	Stops string

	Seats ResultList[SeatsInfo]
}

func (t ScheduleTrain) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Train %q %s %s\n", t.Number, t.Brand, t.Carrier)
	fmt.Fprintf(&b, "running %q %s - %q %s\n", t.RouteFrom, t.RouteFromCode, t.RouteTo, t.RouteToCode)
	fmt.Fprintf(&b, "\tdeparts %q:%s\n", t.FromStation, formatDateTime(t.DepartureDate, t.DepartureTime))
	fmt.Fprintf(&b, "\tarrives %q:%s\n", t.ToStation, formatDateTime(t.ArrivalDate, t.ArrivalTime))
	if t.Duration != nil {
		fmt.Fprintf(&b, "\ttime on the way: %s\n", t.Duration)
	}
	if t.Stops != "" {
		fmt.Fprintf(&b, "\tstops: %s\n", t.Stops)
	}
	if !t.Seats.IsEmpty() {
		b.WriteString("\tseats:\n")
		for _, s := range t.Seats {
			fmt.Fprintf(&b, "\t\t%s\n", s)
		}
	}

	return b.String()
}

// SeatsInfo is the free seat count for one seat class of a train.
type SeatsInfo struct {
	FreeSeats int
	SeatType  string
}

func (s SeatsInfo) String() string {
	return fmt.Sprintf("%d %s", s.FreeSeats, s.SeatType)
}

func formatDateTime(date *TrainDate, t *TrainTime) string {
	var b strings.Builder
	if date != nil {
		b.WriteString(" ")
		b.WriteString(date.String())
	}
	if t != nil {
		b.WriteString(" ")
		b.WriteString(t.String())
	}

	return b.String()
}
