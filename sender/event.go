// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package sender

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	// MessageKey is the only event field the sender reads
	MessageKey = "message"
	// DefaultMessage is sent when the event carries no usable message
	DefaultMessage = "No message found"
)

// Event is the decoded invocation payload
type Event map[string]interface{}

// UnmarshalJSON keeps numbers as json.Number so their digits survive
// re-encoding into the message body
func (e *Event) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil {
		return err
	}
	*e = m
	return nil
}

// Message returns the body to send for this event. Absent, null and empty
// values fall back to DefaultMessage; non-string values are JSON encoded.
func (e Event) Message() string {
	v, ok := e[MessageKey]
	if !ok || v == nil {
		return DefaultMessage
	}
	switch m := v.(type) {
	case string:
		if m == "" {
			return DefaultMessage
		}
		return m
	case fmt.Stringer:
		return m.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
