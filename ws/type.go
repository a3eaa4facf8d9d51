package ws

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/topicgate/topicgate/broker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type KeyType string

func (t KeyType) String() string {
	return string(t)
}

const (
	UndefinedPrefix      = KeyType("undefined")
	InvalidMsgPrefix     = KeyType("invalid_msg")
	MaxConnectionsPrefix = KeyType("max_connections")
)

type Error struct {
	Code KeyType `json:"code"`
	M    string  `json:"msg"`

	Topic string `json:"topic"`
}

func newError(code KeyType, msg, topic string) Error {
	return Error{code, msg, topic}
}

func (e Error) Msg() []byte {
	body, err := json.Marshal(e)
	if err != nil {
		return []byte(`{"code":"undefined","msg":"","topic":""}`)
	}
	return body
}

// recordFrame renders one produced record as a streaming frame.
func recordFrame(topic string, rec broker.Record) []byte {
	s := json.BorrowStream(nil)
	defer json.ReturnStream(s)

	s.WriteObjectStart()
	s.WriteObjectField("topic")
	s.WriteString(topic)
	s.WriteMore()
	s.WriteObjectField("offset")
	s.WriteInt64(rec.Offset)
	s.WriteMore()
	s.WriteObjectField("key")
	s.WriteString(rec.Key)
	s.WriteMore()
	s.WriteObjectField("value")
	s.WriteString(rec.Value)
	s.WriteMore()
	s.WriteObjectField("timestamp")
	s.WriteInt64(rec.Timestamp.UnixMilli())
	s.WriteObjectEnd()

	out := make([]byte, len(s.Buffer()))
	copy(out, s.Buffer())
	return out
}
