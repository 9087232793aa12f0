package query

import (
	"net/url"

	"github.com/rzdrail/rzdrail/pkg/rzd"
	"github.com/rzdrail/rzdrail/pkg/rzd/decode"
)

// ScheduleSearch looks up the trains running between two stations on a
// departure date.
type ScheduleSearch struct {
	from          rzd.StationCode
	to            rzd.StationCode
	date          rzd.TrainDate
	trainType     rzd.TrainType
	freeSeatsOnly bool
}

// NewScheduleSearch builds a schedule search. Searching from a station
// to itself is rejected. With freeSeatsOnly the upstream omits trains
// that are sold out.
func NewScheduleSearch(from, to rzd.StationCode, date rzd.TrainDate, trainType rzd.TrainType, freeSeatsOnly bool) (*ScheduleSearch, error) {
	if from == to {
		return nil, &rzd.ValidationError{Field: "stations", Reason: "departure and arrival stations are the same"}
	}

	return &ScheduleSearch{
		from:          from,
		to:            to,
		date:          date,
		trainType:     trainType,
		freeSeatsOnly: freeSeatsOnly,
	}, nil
}

// Kind is Simple for suburban-only searches, which the upstream
// answers directly, and TwoPhase for everything else.
func (s *ScheduleSearch) Kind() Kind {
	if s.trainType == rzd.TrainTypeSuburban {
		return Simple
	}

	return TwoPhase
}

func (s *ScheduleSearch) RequestURL() string {
	params := url.Values{}
	params.Set("layer_id", layerSchedule)
	params.Set("dir", directionOneWay)
	params.Set("tfl", s.trainType.Code())
	if s.freeSeatsOnly {
		params.Set("checkSeats", "1")
	} else {
		params.Set("checkSeats", "0")
		params.Set("withoutSeats", "y")
	}
	params.Set("code0", s.from.String())
	params.Set("dt0", s.date.String())
	params.Set("code1", s.to.String())

	return buildURL(timetableEndpoint, params)
}

func (s *ScheduleSearch) DataRequestURL(id rzd.RequestID) string {
	params := url.Values{}
	params.Set("layer_id", layerSchedule)

	if s.Kind() == Simple {
		params.Set("dir", directionOneWay)
		params.Set("tfl", s.trainType.Code())
		params.Set("code0", s.from.String())
		params.Set("dt0", s.date.String())
		params.Set("code1", s.to.String())
	} else {
		params.Set("rid", id.String())
	}

	return buildURL(timetableEndpoint, params)
}

func (s *ScheduleSearch) Decode(data []byte) (decode.Outcome[rzd.RouteList], error) {
	return decode.Schedule(data)
}
