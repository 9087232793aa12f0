package decode

import (
	"github.com/rs/zerolog/log"

	"github.com/rzdrail/rzdrail/pkg/rzd"
	"github.com/rzdrail/rzdrail/pkg/util"
)

// TripStops decodes a route stops reply into TripStations. The route
// endpoint wraps its data in a GtExpress_Response envelope and reports
// errors as an Error object either inside it or at the top level.
func TripStops(data []byte) (Outcome[rzd.TripStations], error) {
	var none Outcome[rzd.TripStations]

	v, err := Parse(data)
	if err != nil {
		return none, err
	}

	if v.Field("type").StrOr("") == typeRequestID {
		return none, rzd.ErrReplyNotReady
	}

	if message := errorContent(v.Field("Error")); message != "" {
		return none, &rzd.ServerError{Messages: []string{message}}
	}

	response := v.Field("GtExpress_Response")
	if !response.Exists() {
		return none, &rzd.DecodeError{Reason: "trip reply carries no response envelope"}
	}

	if message := errorContent(response.Field("Error")); message != "" {
		return none, &rzd.ServerError{Messages: []string{message}}
	}

	var (
		stops    []rzd.TripStop
		warnings []string
	)

	for i, rawStop := range response.Field("Routes").Field("Stop").ArrayOr() {
		station := rawStop.Field("Station").StrOr("")
		if station == "" {
			warnings = warnf(warnings, "stop %d dropped: no station name", i)
			log.Warn().Int("stop", i).Msg("Dropping trip stop without a station name")

			continue
		}

		stops = append(stops, rzd.TripStop{
			Station:   station,
			Code:      rawStop.Field("Code").stationCode(),
			Days:      int(rawStop.Field("Days").IntOr(0)),
			Departure: rawStop.Field("DepTime").trainTime(),
			Arrival:   rawStop.Field("ArvTime").trainTime(),
		})
	}

	if len(stops) == 0 {
		return emptyOutcome[rzd.TripStations](warnings), nil
	}

	trip := rzd.TripStations{
		TrainNumber: response.Field("Train").Field("Number").StrOr(""),
		Stops:       rzd.NewResultList(stops),
	}

	return foundOutcome(trip, warnings), nil
}

func errorContent(v Value) string {
	if !v.Exists() {
		return ""
	}

	return util.NormalizeMessage(v.Field("content").StrOr(""))
}
