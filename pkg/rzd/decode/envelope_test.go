package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzdrail/rzdrail/pkg/rzd"
)

func TestReplyID(t *testing.T) {
	id, err := ReplyID([]byte(`{"result":"RID","RID":17355769877,"timestamp":"02.04.2022 18:31:00.189"}`))
	require.NoError(t, err)
	assert.Equal(t, rzd.RequestID(17355769877), id)

	id, err = ReplyID([]byte(`{"type":"REQUEST_ID","rid":17872768326,"fail_msg":"null"}`))
	require.NoError(t, err)
	assert.Equal(t, rzd.RequestID(17872768326), id)
}

func TestReplyIDMessages(t *testing.T) {
	reply := `{"result":"OK","tp":[{"from":"САНКТ-ПЕТЕРБУРГ","fromCode":2004000,"list":[],"msgList":[` +
		`{"message":"Дата отправления находится за пределами периода предварительной продажи","type":"TICKET_SEARCH_MESSAGE"},` +
		`{"message":"Дата отправления находится за пределами периода 90 дней.","type":"TICKET_SEARCH_MESSAGE"}]}]}`

	_, err := ReplyID([]byte(reply))

	var serverErr *rzd.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, []string{
		"дата отправления находится за пределами периода предварительной продажи",
		"дата отправления находится за пределами периода 90 дней",
	}, serverErr.Messages)
}

func TestReplyIDUnrecognized(t *testing.T) {
	var decodeErr *rzd.DecodeError

	_, err := ReplyID([]byte(`{"result":"FAIL","type":"SYSTEM_ERROR","error":"Произошла системная ошибка."}`))
	assert.ErrorAs(t, err, &decodeErr)

	_, err = ReplyID([]byte(`{"type":"FAIL","rid":0,"fail_msg":"Произошла системная ошибка."}`))
	assert.ErrorAs(t, err, &decodeErr)

	_, err = ReplyID([]byte(`{"result":"RID"}`))
	assert.ErrorAs(t, err, &decodeErr)

	_, err = ReplyID([]byte(`not json`))
	assert.ErrorAs(t, err, &decodeErr)
}
