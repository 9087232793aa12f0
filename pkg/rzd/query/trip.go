package query

import (
	"net/url"

	"github.com/rzdrail/rzdrail/pkg/rzd"
	"github.com/rzdrail/rzdrail/pkg/rzd/decode"
	"github.com/rzdrail/rzdrail/pkg/util"
)

// TripStopsSearch looks up the stops a train makes along its route on
// a given date.
type TripStopsSearch struct {
	number string
	date   rzd.TrainDate
}

// NewTripStopsSearch normalizes the train number and rejects an empty
// one.
func NewTripStopsSearch(number string, date rzd.TrainDate) (*TripStopsSearch, error) {
	number = util.NormalizeQuery(number)
	if number == "" {
		return nil, &rzd.ValidationError{Field: "train number", Reason: "must not be empty"}
	}

	return &TripStopsSearch{number: number, date: date}, nil
}

func (s *TripStopsSearch) Kind() Kind {
	return TwoPhase
}

func (s *TripStopsSearch) RequestURL() string {
	params := url.Values{}
	params.Set("layer_id", layerTripStops)
	params.Set("date", s.date.String())
	params.Set("train_num", s.number)
	params.Set("json", "y")
	params.Set("format", "array")

	return buildURL(timetableEndpoint, params)
}

func (s *TripStopsSearch) DataRequestURL(id rzd.RequestID) string {
	params := url.Values{}
	params.Set("layer_id", layerTripStops)
	params.Set("rid", id.String())
	params.Set("json", "y")
	params.Set("format", "array")

	return buildURL(timetableEndpoint, params)
}

func (s *TripStopsSearch) Decode(data []byte) (decode.Outcome[rzd.TripStations], error) {
	return decode.TripStops(data)
}
