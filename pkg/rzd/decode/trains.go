package decode

import (
	"github.com/rs/zerolog/log"

	"github.com/rzdrail/rzdrail/pkg/rzd"
	"github.com/rzdrail/rzdrail/pkg/util"
)

// Trains decodes a seat availability reply into a TrainList. Insurance
// offers come in a separate top-level list and are joined to cars by
// insurance type id.
func Trains(data []byte) (Outcome[rzd.TrainList], error) {
	var none Outcome[rzd.TrainList]

	v, err := Parse(data)
	if err != nil {
		return none, err
	}

	switch result := v.Field("result").StrOr(""); result {
	case resultOK:
	case resultRequestID:
		return none, rzd.ErrReplyNotReady
	default:
		return none, &rzd.DecodeError{Reason: "train reply has no recognized result marker"}
	}

	insurance := insuranceOffers(v.Field("insuranceCompany").ArrayOr())

	var (
		trains   []rzd.Train
		warnings []string
	)

	for i, rawTrain := range v.Field("lst").ArrayOr() {
		// Each train in the list carries its own result marker; a
		// failed one describes why the upstream could not answer.
		if result := rawTrain.Field("result").StrOr(""); result != resultOK {
			message := util.NormalizeMessage(rawTrain.Field("error").StrOr(""))
			if message == "" {
				message = "upstream rejected the train query"
			}

			return none, &rzd.ServerError{Messages: []string{message}}
		}

		number := rawTrain.Field("number").StrOr("")
		if number == "" {
			warnings = warnf(warnings, "train %d dropped: no train number", i)
			log.Warn().Int("train", i).Msg("Dropping train record without a number")

			continue
		}

		var cars []rzd.TrainCar
		for _, rawCar := range rawTrain.Field("cars").ArrayOr() {
			cars = append(cars, trainCar(rawCar, insurance))
		}

		trains = append(trains, rzd.Train{
			Number:        number,
			DepartureDate: rawTrain.Field("date0").trainDate(),
			DepartureTime: rawTrain.Field("time0").trainTime(),
			ArrivalDate:   rawTrain.Field("date1").trainDate(),
			ArrivalTime:   rawTrain.Field("time1").trainTime(),
			FromStation:   rawTrain.Field("station0").StrOr(""),
			ToStation:     rawTrain.Field("station1").StrOr(""),
			FromCode:      rawTrain.Field("code0").stationCode(),
			ToCode:        rawTrain.Field("code1").stationCode(),
			Cars:          rzd.NewResultList(cars),
		})
	}

	if len(trains) == 0 {
		return emptyOutcome[rzd.TrainList](warnings), nil
	}

	return foundOutcome(rzd.NewResultList(trains), warnings), nil
}

func trainCar(v Value, insurance map[int64]rzd.InsuranceInfo) rzd.TrainCar {
	var services []string
	for _, service := range v.Field("services").ArrayOr() {
		if description := service.Field("description").StrOr(""); description != "" {
			services = append(services, description)
		}
	}

	var seats []rzd.CarSeats
	for _, seat := range v.Field("seats").ArrayOr() {
		seats = append(seats, rzd.CarSeats{
			Free:   int(seat.Field("free").IntOr(0)),
			Label:  seat.Field("label").StrOr(""),
			Tariff: seat.Field("tariff").StrOr(""),
		})
	}

	var offer *rzd.InsuranceInfo
	if id, ok := v.Field("insuranceTypeId").Int(); ok {
		if found, exists := insurance[id]; exists {
			offer = &found
		}
	}

	return rzd.TrainCar{
		Number:        v.Field("cnumber").StrOr(""),
		SeatType:      v.Field("typeLoc").StrOr(""),
		ServiceClass:  v.Field("clsType").StrOr(""),
		Services:      services,
		Tariff:        v.Field("tariff").StrOr(""),
		Tariff2:       v.Field("tariff2").StrOr(""),
		ServiceTariff: v.Field("tariffServ").StrOr(""),
		Carrier:       v.Field("carrier").StrOr(""),
		Insurance:     offer,
		Seats:         rzd.NewResultList(seats),
		Places:        v.Field("places").StrOr(""),
	}
}

func insuranceOffers(items []Value) map[int64]rzd.InsuranceInfo {
	offers := map[int64]rzd.InsuranceInfo{}
	for _, item := range items {
		id, ok := item.Field("id").Int()
		if !ok {
			continue
		}

		offers[id] = rzd.InsuranceInfo{
			Name: item.Field("shortName").StrOr(""),
			URL:  item.Field("offerUrl").StrOr(""),
			Cost: item.Field("insuranceCost").numberString(),
		}
	}

	return offers
}
