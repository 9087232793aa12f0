package decode

import (
	"github.com/rzdrail/rzdrail/pkg/rzd"
	"github.com/rzdrail/rzdrail/pkg/util"
)

// Envelope result markers. The timetable endpoints answer with
// result:"OK" (data or a recognized empty result), result:"RID" (a
// request id, or "ask again later" when polling for data); the route
// endpoint uses type:"REQUEST_ID" for its id replies.
const (
	resultOK        = "OK"
	resultRequestID = "RID"
	typeRequestID   = "REQUEST_ID"
)

// ReplyID decodes the first-phase reply of a two-phase query into the
// request id the data must be fetched with. It recognizes both id
// envelope dialects the upstream uses. An OK envelope carrying only
// server messages becomes a ServerError; anything else is a
// DecodeError.
func ReplyID(data []byte) (rzd.RequestID, error) {
	v, err := Parse(data)
	if err != nil {
		return 0, err
	}

	if result := v.Field("result").StrOr(""); result != "" {
		switch result {
		case resultRequestID:
			id, ok := v.FirstField("RID", "rid").Int()
			if !ok {
				return 0, &rzd.DecodeError{Reason: "id reply carries no request id"}
			}

			return rzd.RequestID(id), nil
		case resultOK:
			messages := routeMessages(v.Field("tp").ArrayOr())
			if len(messages) > 0 {
				return 0, &rzd.ServerError{Messages: messages}
			}

			return 0, &rzd.DecodeError{Reason: "id reply carries neither a request id nor messages"}
		default:
			return 0, &rzd.DecodeError{Reason: "unrecognized id reply result " + result}
		}
	}

	if v.Field("type").StrOr("") == typeRequestID {
		id, ok := v.Field("rid").Int()
		if !ok {
			return 0, &rzd.DecodeError{Reason: "id reply carries no request id"}
		}

		return rzd.RequestID(id), nil
	}

	return 0, &rzd.DecodeError{Reason: "reply is not a recognized id envelope"}
}

// routeMessages collects the normalized upstream messages attached to
// a list of route envelopes.
func routeMessages(routes []Value) []string {
	var messages []string
	for _, route := range routes {
		for _, msg := range route.Field("msgList").ArrayOr() {
			text := util.NormalizeMessage(msg.Field("message").StrOr(""))
			if text != "" {
				messages = append(messages, text)
			}
		}
	}

	return messages
}
