package stompwire

import "strings"

const nullByte = byte(0)

//EnvelopeType is the one letter sockjs transport marker found at the front of an
//incoming payload. The zero value means no envelope, which is the case for every
//frame built locally for sending.
type EnvelopeType byte

const (
	EnvelopeNone      EnvelopeType = 0
	EnvelopeOpen      EnvelopeType = 'o'
	EnvelopeHeartBeat EnvelopeType = 'h'
	EnvelopeArray     EnvelopeType = 'a'
	EnvelopeMessage   EnvelopeType = 'm'
	EnvelopeClose     EnvelopeType = 'c'
)

func envelopeFromMarker(marker byte) (EnvelopeType, error) {
	switch EnvelopeType(marker) {
	case EnvelopeOpen, EnvelopeHeartBeat, EnvelopeArray, EnvelopeMessage, EnvelopeClose:
		return EnvelopeType(marker), nil
	}
	return EnvelopeNone, BadEnvelopeError(string(rune(marker)))
}

//stomp frame is made up of a command, headers and an optional body. Envelope is
//only ever set on frames that came off the transport. Frames are built once and
//never mutated, changed content means a new frame.
type Frame struct {
	Envelope EnvelopeType
	Command  Command
	Headers  Headers
	Body     string
}

//NewFrame builds an outgoing frame. No validation happens here, what goes in the
//headers for a given command is the caller's business.
func NewFrame(command Command, headers Headers, body string) Frame {
	if headers == nil {
		headers = Headers{}
	}
	return Frame{
		Command: command,
		Headers: headers,
		Body:    body,
	}
}

//Serialize renders the frame as stomp wire text: the command line, one key:value
//line per header, a blank line and the null terminator. The envelope marker is
//never emitted, wrapping is the transport's job. The Body field is not written
//either, a body that needs sending travels as a message or custom header.
func (f Frame) Serialize() string {
	var buf strings.Builder
	buf.WriteString(string(f.Command))
	buf.WriteByte('\n')
	for _, h := range f.Headers {
		buf.WriteString(wireCodec.Encode(h.Key()))
		buf.WriteByte(':')
		buf.WriteString(wireCodec.Encode(h.Value()))
		buf.WriteByte('\n')
	}
	//stomp wants a blank line between headers and body
	buf.WriteByte('\n')
	//stomp protocol wants a null byte at the end of the frame
	buf.WriteByte(nullByte)
	return buf.String()
}

//Message returns the value of the message header if the frame carries one,
//otherwise the empty string
func (f Frame) Message() string {
	for _, h := range f.Headers {
		if h.IsMessage() {
			return h.Value()
		}
	}
	return ""
}
