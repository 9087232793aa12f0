package rzd

import (
	"fmt"
	"strings"
)

// TrainList is the result of a seat availability search.
type TrainList = ResultList[Train]

// Train is per-car seat availability for one train on one date.
type Train struct {
	Number string

	DepartureDate *TrainDate
	DepartureTime *TrainTime
	ArrivalDate   *TrainDate
	ArrivalTime   *TrainTime

	FromStation string
	ToStation   string
	FromCode    StationCode
	ToCode      StationCode

	Cars ResultList[TrainCar]
}

func (t Train) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Train %q\n", t.Number)
	fmt.Fprintf(&b, "From: %q %s\n", t.FromStation, t.FromCode)
	fmt.Fprintf(&b, "To: %q %s\n", t.ToStation, t.ToCode)
	for _, c := range t.Cars {
		b.WriteString(c.String())
	}

	return b.String()
}

// TrainCar describes one car of the train: class, tariffs and which
// places are still free. Tariff fields keep the upstream's string
// representation; an absent tariff is an empty string, never a zero.
type TrainCar struct {
	Number       string
	SeatType     string
	ServiceClass string
	Services     []string

	Tariff        string
	Tariff2       string
	ServiceTariff string

	Carrier   string
	Insurance *InsuranceInfo

	Seats  ResultList[CarSeats]
	Places string
}

func (c TrainCar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Car %s, %s, class %s:\n", c.Number, c.SeatType, c.ServiceClass)
	if len(c.Services) > 0 {
		fmt.Fprintf(&b, "\tservices: %s\n", strings.Join(c.Services, ", "))
	}
	b.WriteString("\ttariffs:\n")
	if c.Tariff != "" {
		fmt.Fprintf(&b, "\t\t%s (ticket)\n", c.Tariff)
	}
	if c.Tariff2 != "" {
		fmt.Fprintf(&b, "\t\t%s (berth)\n", c.Tariff2)
	}
	if c.ServiceTariff != "" {
		fmt.Fprintf(&b, "\t\t%s (service)\n", c.ServiceTariff)
	}
	if c.Insurance != nil {
		fmt.Fprintf(&b, "\tinsurance: %s\n", c.Insurance)
	}
	fmt.Fprintf(&b, "\tplaces: %s\n", c.Places)
	b.WriteString("\tfree seats:\n")
	for _, s := range c.Seats {
		fmt.Fprintf(&b, "\t\t%s\n", s)
	}

	return b.String()
}

// CarSeats is the free seat count and price for one seat kind within a
// car (lower berth, upper berth, ...).
type CarSeats struct {
	Free   int
	Label  string
	Tariff string
}

func (s CarSeats) String() string {
	return fmt.Sprintf("%d %s at %s", s.Free, s.Label, s.Tariff)
}

// InsuranceInfo is an insurance offer attached to a car.
type InsuranceInfo struct {
	Name string
	URL  string
	Cost string
}

func (i InsuranceInfo) String() string {
	return fmt.Sprintf("%s, %s (%s)", i.Name, i.Cost, i.URL)
}
