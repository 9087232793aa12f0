package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzdrail/rzdrail/pkg/rzd"
)

const scheduleReply = `{"result":"OK","tp":[{"from":"САНКТ-ПЕТЕРБУРГ","fromCode":2004000,"where":"МОСКВА","whereCode":2000000,` +
	`"date":"01.04.2022","state":"Trains","list":[` +
	`{"number":"119А","brand":"","carrier":"ФПК","route0":"С-ПЕТЕР-ГЛ","route1":"БЕЛГОРОД","routeCode0":2004001,"routeCode1":2014370,` +
	`"station0":"САНКТ-ПЕТЕРБУРГ-ГЛАВН. (МОСКОВСКИЙ ВОКЗАЛ)","station1":"МОСКВА ВК ВОСТОЧНЫЙ (ТПУ ЧЕРКИЗОВО)",` +
	`"date0":"01.04.2022","time0":"00:11","date1":"01.04.2022","time1":"10:08","timeInWay":"09:57",` +
	`"cars":[{"type":"Плац","typeLoc":"Плацкартный","freeSeats":121,"tariff":1459},{"type":"Сид","typeLoc":"Сидячий","freeSeats":106,"tariff":795}]},` +
	`{"number":"713В","brand":"СТРИЖ","carrier":"ФПК","route0":"С-ПЕТ-ЛАД","route1":"САМАРА","routeCode0":2004006,"routeCode1":2024000,` +
	`"station0":"САНКТ-ПЕТЕРБУРГ (ЛАДОЖСКИЙ ВОКЗАЛ)","station1":"МОСКВА ВК ВОСТОЧНЫЙ (ТПУ ЧЕРКИЗОВО)",` +
	`"date0":"01.04.2022","time0":"00:20","date1":"01.04.2022","time1":"05:34","timeInWay":"05:14","cars":[]}],` +
	`"msgList":[]}],"timestamp":"20.03.2022 18:28:31.458"}`

func TestSchedule(t *testing.T) {
	outcome, err := Schedule([]byte(scheduleReply))
	require.NoError(t, err)
	require.False(t, outcome.Empty())
	assert.Empty(t, outcome.Warnings)

	routes := *outcome.Value
	require.Len(t, routes, 1)

	route := routes[0]
	assert.Equal(t, "САНКТ-ПЕТЕРБУРГ", route.FromName)
	assert.Equal(t, rzd.StationCode(2004000), route.FromCode)
	assert.Equal(t, "МОСКВА", route.ToName)
	assert.Equal(t, rzd.StationCode(2000000), route.ToCode)

	require.Equal(t, 2, route.Trains.Len())

	first := route.Trains[0]
	assert.Equal(t, "119А", first.Number)
	assert.Equal(t, "ФПК", first.Carrier)
	assert.Equal(t, rzd.StationCode(2004001), first.RouteFromCode)
	require.NotNil(t, first.DepartureDate)
	assert.Equal(t, "01.04.2022", first.DepartureDate.String())
	require.NotNil(t, first.DepartureTime)
	assert.Equal(t, "00:11", first.DepartureTime.String())
	require.NotNil(t, first.Duration)
	assert.Equal(t, "09:57", first.Duration.String())
	require.Equal(t, 2, first.Seats.Len())
	assert.Equal(t, rzd.SeatsInfo{FreeSeats: 121, SeatType: "Плацкартный"}, first.Seats[0])

	second := route.Trains[1]
	assert.Equal(t, "713В", second.Number)
	assert.Equal(t, "СТРИЖ", second.Brand)
	assert.True(t, second.Seats.IsEmpty())
}

func TestScheduleDropsBrokenRecords(t *testing.T) {
	reply := `{"result":"OK","tp":[{"from":"А","fromCode":1,"where":"Б","whereCode":2,"list":[` +
		`{"number":"","date0":"01.04.2022","time0":"10:00"},` +
		`{"number":"100Я","date0":"01.04.2022","time0":"10:00"},` +
		`{"number":"200Я","date0":"01.04.2022"}],"msgList":[]}]}`

	outcome, err := Schedule([]byte(reply))
	require.NoError(t, err)
	require.False(t, outcome.Empty())
	assert.Len(t, outcome.Warnings, 2)

	routes := *outcome.Value
	require.Len(t, routes, 1)
	require.Equal(t, 1, routes[0].Trains.Len())
	assert.Equal(t, "100Я", routes[0].Trains[0].Number)
}

func TestScheduleEmpty(t *testing.T) {
	outcome, err := Schedule([]byte(`{"result":"OK","tp":[],"timestamp":"02.04.2022 14:30:25.934"}`))
	require.NoError(t, err)
	assert.True(t, outcome.Empty())
}

func TestScheduleServerMessages(t *testing.T) {
	reply := `{"result":"OK","tp":[{"from":"А","fromCode":1,"where":"Б","whereCode":2,"list":[],` +
		`"msgList":[{"message":"Дата отправления находится за пределами периода 90 дней."}]}]}`

	_, err := Schedule([]byte(reply))

	var serverErr *rzd.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, []string{"дата отправления находится за пределами периода 90 дней"}, serverErr.Messages)
}

func TestScheduleNotReady(t *testing.T) {
	_, err := Schedule([]byte(`{"result":"RID","RID":17355769877}`))
	assert.ErrorIs(t, err, rzd.ErrReplyNotReady)
}

func TestScheduleUnrecognized(t *testing.T) {
	var decodeErr *rzd.DecodeError

	_, err := Schedule([]byte(`{"result":"FAIL","error":"Произошла системная ошибка."}`))
	assert.ErrorAs(t, err, &decodeErr)

	_, err = Schedule([]byte(`{"unrelated":true}`))
	assert.ErrorAs(t, err, &decodeErr)

	_, err = Schedule([]byte(`<html></html>`))
	assert.ErrorAs(t, err, &decodeErr)
}
