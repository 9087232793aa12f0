package decode

import (
	"github.com/rs/zerolog/log"

	"github.com/rzdrail/rzdrail/pkg/rzd"
)

// Schedule decodes a schedule search reply into a RouteList.
//
// Decoding is best-effort per record: a train missing its number or
// its departure timestamp is dropped with a warning, everything else
// survives. Records keep the exact upstream order. The decoder
// distinguishes a recognized empty result (OK envelope, no routes)
// from a structurally unrecognizable reply, and surfaces
// upstream-reported messages as a ServerError when no route carries
// any trains.
func Schedule(data []byte) (Outcome[rzd.RouteList], error) {
	var none Outcome[rzd.RouteList]

	v, err := Parse(data)
	if err != nil {
		return none, err
	}

	switch result := v.Field("result").StrOr(""); result {
	case resultOK:
	case resultRequestID:
		return none, rzd.ErrReplyNotReady
	default:
		return none, &rzd.DecodeError{Reason: "schedule reply has no recognized result marker"}
	}

	var (
		routes   []rzd.Route
		messages []string
		warnings []string
	)

	for i, rawRoute := range v.Field("tp").ArrayOr() {
		trainList := rawRoute.Field("list").ArrayOr()
		if len(trainList) == 0 {
			messages = append(messages, routeMessages([]Value{rawRoute})...)
			continue
		}

		var trains []rzd.ScheduleTrain
		for j, rawTrain := range trainList {
			train, problem := scheduleTrain(rawTrain)
			if problem != "" {
				warnings = warnf(warnings, "route %d train %d dropped: %s", i, j, problem)
				log.Warn().Int("route", i).Int("train", j).Str("reason", problem).Msg("Dropping schedule record")

				continue
			}

			trains = append(trains, train)
		}

		if len(trains) == 0 {
			continue
		}

		routes = append(routes, rzd.Route{
			FromName: rawRoute.Field("from").StrOr(""),
			FromCode: rawRoute.Field("fromCode").stationCode(),
			ToName:   rawRoute.Field("where").StrOr(""),
			ToCode:   rawRoute.Field("whereCode").stationCode(),
			Trains:   rzd.NewResultList(trains),
		})
	}

	if len(routes) == 0 {
		if len(messages) > 0 {
			return none, &rzd.ServerError{Messages: messages}
		}

		return emptyOutcome[rzd.RouteList](warnings), nil
	}

	return foundOutcome(rzd.NewResultList(routes), warnings), nil
}

// scheduleTrain converts one raw train record. It returns a non-empty
// problem description when a required field is missing, in which case
// the record must be dropped.
func scheduleTrain(v Value) (rzd.ScheduleTrain, string) {
	number := v.Field("number").StrOr("")
	if number == "" {
		return rzd.ScheduleTrain{}, "no train number"
	}

	departureDate := v.Field("date0").trainDate()
	departureTime := v.Field("time0").trainTime()
	if departureDate == nil || departureTime == nil {
		return rzd.ScheduleTrain{}, "no departure timestamp"
	}

	var seats []rzd.SeatsInfo
	for _, car := range v.Field("cars").ArrayOr() {
		seats = append(seats, rzd.SeatsInfo{
			FreeSeats: int(car.Field("freeSeats").IntOr(0)),
			SeatType:  car.Field("typeLoc").StrOr(""),
		})
	}

	return rzd.ScheduleTrain{
		Number:        number,
		Brand:         v.Field("brand").StrOr(""),
		Carrier:       v.Field("carrier").StrOr(""),
		RouteFrom:     v.Field("route0").StrOr(""),
		RouteFromCode: v.Field("routeCode0").stationCode(),
		RouteTo:       v.Field("route1").StrOr(""),
		RouteToCode:   v.Field("routeCode1").stationCode(),
		FromStation:   v.Field("station0").StrOr(""),
		DepartureDate: departureDate,
		DepartureTime: departureTime,
		ToStation:     v.Field("station1").StrOr(""),
		ArrivalDate:   v.Field("date1").trainDate(),
		ArrivalTime:   v.Field("time1").trainTime(),
		Duration:      v.Field("timeInWay").trainTime(),
		Stops:         v.Field("stList").StrOr(""),
		Seats:         rzd.NewResultList(seats),
	}, ""
}
