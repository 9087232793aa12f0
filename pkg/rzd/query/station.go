package query

import (
	"net/url"
	"unicode/utf8"

	"github.com/rzdrail/rzdrail/pkg/rzd"
	"github.com/rzdrail/rzdrail/pkg/rzd/decode"
	"github.com/rzdrail/rzdrail/pkg/util"
)

const minStationQueryLength = 2

// StationSearch looks up station codes by part of the station name.
type StationSearch struct {
	query string
}

// NewStationSearch normalizes the name part and requires at least two
// characters, the minimum the suggester matches on.
func NewStationSearch(namePart string) (*StationSearch, error) {
	query := util.NormalizeQuery(namePart)
	if utf8.RuneCountInString(query) < minStationQueryLength {
		return nil, &rzd.ValidationError{Field: "station name", Reason: "needs at least two characters"}
	}

	return &StationSearch{query: query}, nil
}

func (s *StationSearch) Kind() Kind {
	return Simple
}

func (s *StationSearch) RequestURL() string {
	return ""
}

func (s *StationSearch) DataRequestURL(rzd.RequestID) string {
	params := url.Values{}
	params.Set("stationNamePart", s.query)
	params.Set("lang", "ru")
	params.Set("compactMode", "y")

	return buildURL(suggesterEndpoint, params)
}

func (s *StationSearch) Decode(data []byte) (decode.Outcome[rzd.StationList], error) {
	return decode.Stations(data, s.query)
}
