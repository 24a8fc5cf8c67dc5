package v1handler

import (
	"secondchance/pkg/domain"

	"github.com/go-faster/jx"
)

// EncodeVerdict renders a verdict. A failed verdict carries nothing but
// "success": false.
func EncodeVerdict(v domain.Verdict) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.Field("success", func(e *jx.Encoder) { e.Bool(v.Success) })
	if v.Success {
		e.Field("url", func(e *jx.Encoder) { e.Str(v.URL) })
		e.Field("score", func(e *jx.Encoder) { e.Int(v.Score) })
		e.Field("safe", func(e *jx.Encoder) { e.Bool(v.Safe) })
	}
	e.ObjEnd()

	return e.Bytes()
}

// EncodeAck renders the result of an override.
func EncodeAck(a domain.Ack) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.Field("success", func(e *jx.Encoder) { e.Bool(a.Success) })
	if a.URL != "" {
		e.Field("url", func(e *jx.Encoder) { e.Str(a.URL) })
	}
	e.ObjEnd()

	return e.Bytes()
}

func EncodeError(code, message string) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.Field("success", func(e *jx.Encoder) { e.Bool(false) })
	e.Field("error", func(e *jx.Encoder) {
		e.ObjStart()
		e.Field("code", func(e *jx.Encoder) { e.Str(code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(message) })
		e.ObjEnd()
	})
	e.ObjEnd()

	return e.Bytes()
}
