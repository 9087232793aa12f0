package query

import "net/url"

// Kind tells the client how many round trips a query needs. A Simple
// query gets its data in one request; a TwoPhase query first asks the
// upstream to prepare an answer, receives a request id and session
// cookies, then polls for the data quoting both.
type Kind int

const (
	Simple Kind = iota
	TwoPhase
)

const (
	timetableEndpoint = "https://pass.rzd.ru/timetable/public/ru"
	suggesterEndpoint = "https://pass.rzd.ru/suggester"
)

// Timetable layers select the operation behind the shared endpoint.
const (
	layerSchedule  = "5827"
	layerSeats     = "5764"
	layerTripStops = "5804"
)

const directionOneWay = "0"

// buildURL renders a request URL with the parameters in sorted key
// order, so equal queries always produce byte-identical URLs.
func buildURL(endpoint string, params url.Values) string {
	return endpoint + "?" + params.Encode()
}
