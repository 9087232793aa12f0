package query

import (
	"net/url"

	"github.com/rzdrail/rzdrail/pkg/rzd"
	"github.com/rzdrail/rzdrail/pkg/rzd/decode"
	"github.com/rzdrail/rzdrail/pkg/util"
)

// TrainSearch looks up per-car seat availability for one train,
// identified by its number and its departure station, date and time.
type TrainSearch struct {
	from   rzd.StationCode
	to     rzd.StationCode
	date   rzd.TrainDate
	time   rzd.TrainTime
	number string
}

// NewTrainSearch normalizes the train number and rejects an empty one.
func NewTrainSearch(from, to rzd.StationCode, date rzd.TrainDate, departure rzd.TrainTime, number string) (*TrainSearch, error) {
	number = util.NormalizeQuery(number)
	if number == "" {
		return nil, &rzd.ValidationError{Field: "train number", Reason: "must not be empty"}
	}

	return &TrainSearch{
		from:   from,
		to:     to,
		date:   date,
		time:   departure,
		number: number,
	}, nil
}

func (s *TrainSearch) Kind() Kind {
	return TwoPhase
}

func (s *TrainSearch) RequestURL() string {
	params := url.Values{}
	params.Set("layer_id", layerSeats)
	params.Set("dir", directionOneWay)
	params.Set("code0", s.from.String())
	params.Set("dt0", s.date.String())
	params.Set("time0", s.time.String())
	params.Set("code1", s.to.String())
	params.Set("tnum0", s.number)

	return buildURL(timetableEndpoint, params)
}

func (s *TrainSearch) DataRequestURL(id rzd.RequestID) string {
	params := url.Values{}
	params.Set("layer_id", layerSeats)
	params.Set("rid", id.String())

	return buildURL(timetableEndpoint, params)
}

func (s *TrainSearch) Decode(data []byte) (decode.Outcome[rzd.TrainList], error) {
	return decode.Trains(data)
}
