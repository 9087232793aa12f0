package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzdrail/rzdrail/pkg/rzd"
)

const tripReply = `{"GtExpress_Response":{"ReqExpressZK":3263309,"ReqAddress":"MZD:5431",` +
	`"Train":{"Route":{"Station":["С-ПЕТЕР-ГЛ","МОСКВА ОКТ"],"CodeFrom":2004001,"CodeTo":2006004},"Number":"001А"},` +
	`"Version":"2.7.81","Routes":{"Stop":[` +
	`{"Station":"С-ПЕТЕР-ГЛ","Distance":0,"Days":"00","DepTime":"23:55","Code":2004001},` +
	`{"ArvTime":"07:55","Station":"МОСКВА ОКТ","Distance":650,"Days":"01","Code":2006004}],` +
	`"Title":"ОСНОВНОЙ МАРШРУТ"},"Type":"TrainRoute"}}`

func TestTripStops(t *testing.T) {
	outcome, err := TripStops([]byte(tripReply))
	require.NoError(t, err)
	require.False(t, outcome.Empty())

	trip := *outcome.Value
	assert.Equal(t, "001А", trip.TrainNumber)
	require.Equal(t, 2, trip.Stops.Len())

	origin := trip.Stops[0]
	assert.Equal(t, "С-ПЕТЕР-ГЛ", origin.Station)
	assert.Equal(t, rzd.StationCode(2004001), origin.Code)
	assert.Equal(t, 0, origin.Days)
	require.NotNil(t, origin.Departure)
	assert.Equal(t, "23:55", origin.Departure.String())
	assert.Nil(t, origin.Arrival)

	terminal := trip.Stops[1]
	assert.Equal(t, "МОСКВА ОКТ", terminal.Station)
	assert.Equal(t, 1, terminal.Days)
	assert.Nil(t, terminal.Departure)
	require.NotNil(t, terminal.Arrival)
	assert.Equal(t, "07:55", terminal.Arrival.String())
}

func TestTripStopsNotReady(t *testing.T) {
	_, err := TripStops([]byte(`{"type":"REQUEST_ID","rid":17872768326,"fail_msg":"null"}`))
	assert.ErrorIs(t, err, rzd.ErrReplyNotReady)
}

func TestTripStopsTopLevelError(t *testing.T) {
	reply := `{"Error":{"Version":"2.7.81","content":"Parameter [Train::Number]: not found or invalid format","Code":"040311"}}`

	_, err := TripStops([]byte(reply))

	var serverErr *rzd.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, []string{"parameter [train::number]: not found or invalid format"}, serverErr.Messages)
}

func TestTripStopsEnvelopeError(t *testing.T) {
	reply := `{"GtExpress_Response":{"Error":{"content":"Неверная дата отправления.","Code":2010},"Type":"TrainRoute"}}`

	_, err := TripStops([]byte(reply))

	var serverErr *rzd.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, []string{"неверная дата отправления"}, serverErr.Messages)
}

func TestTripStopsEmptyRoute(t *testing.T) {
	reply := `{"GtExpress_Response":{"Train":{"Number":"001А"},"Routes":{"Stop":[]},"Type":"TrainRoute"}}`

	outcome, err := TripStops([]byte(reply))
	require.NoError(t, err)
	assert.True(t, outcome.Empty())
}

func TestTripStopsUnrecognized(t *testing.T) {
	var decodeErr *rzd.DecodeError

	_, err := TripStops([]byte(`{"unrelated":true}`))
	assert.ErrorAs(t, err, &decodeErr)
}
