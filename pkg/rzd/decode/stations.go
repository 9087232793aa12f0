package decode

import (
	"github.com/rs/zerolog/log"

	"github.com/rzdrail/rzdrail/pkg/rzd"
	"github.com/rzdrail/rzdrail/pkg/util"
)

// Stations decodes a station suggester reply into a StationList,
// keeping only stations with a word starting with the query. The
// upstream matches on the first two letters only, so the full query
// has to be re-checked here.
func Stations(data []byte, query string) (Outcome[rzd.StationList], error) {
	var none Outcome[rzd.StationList]

	v, err := Parse(data)
	if err != nil {
		return none, err
	}

	items, ok := v.Array()
	if !ok {
		return none, &rzd.DecodeError{Reason: "station reply is not a list"}
	}

	var (
		stations []rzd.Station
		warnings []string
	)

	for i, item := range items {
		name := item.Field("n").StrOr("")
		if name == "" {
			warnings = warnf(warnings, "station %d dropped: no name", i)
			log.Warn().Int("station", i).Msg("Dropping station record without a name")

			continue
		}

		if !util.WordHasPrefix(name, query) {
			continue
		}

		stations = append(stations, rzd.Station{
			Name: name,
			Code: item.Field("c").stationCode(),
		})
	}

	if len(stations) == 0 {
		return emptyOutcome[rzd.StationList](warnings), nil
	}

	return foundOutcome(rzd.NewResultList(stations), warnings), nil
}
