package stompwire

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

//Decode turns one raw transport payload into a Frame. It is total: it never
//returns an error, every malformed input degrades to an ERROR frame whose
//message header describes what went wrong. The envelope type is kept on the
//fallback frame once it has been resolved.
func Decode(payload string) Frame {
	if "" == payload {
		return errorFrame(EnvelopeNone, BadEnvelopeError("empty payload"))
	}
	envelope, err := envelopeFromMarker(payload[0])
	if err != nil {
		return errorFrame(EnvelopeNone, err)
	}
	//the rest of the payload is a json array of frame texts, the first entry
	//is the embedded stomp frame
	var texts []string
	if err := jsoniter.UnmarshalFromString(payload[1:], &texts); err != nil {
		return errorFrame(envelope, errors.Wrap(err, "unable to parse transport payload"))
	}
	if 0 == len(texts) {
		return errorFrame(envelope, BadFrameError("transport payload held no frame text"))
	}
	return decodeFrameText(envelope, texts[0])
}

//decodeFrameText splits the embedded stomp text into command, headers and body.
//Unknown header keys are dropped, duplicate keys keep the first value seen.
func decodeFrameText(envelope EnvelopeType, text string) Frame {
	parts := strings.Split(text, "\n")
	command, err := ParseCommand(parts[0])
	if err != nil {
		return errorFrame(envelope, err)
	}

	headers := Headers{}
	var body strings.Builder
	inBody := false
	for _, part := range parts[1:] {
		if inBody {
			//put back the line feed the split consumed
			if body.Len() > 0 {
				body.WriteByte('\n')
			}
			body.WriteString(part)
			continue
		}
		if "" == part {
			//two line feeds in a row, headers are done
			inBody = true
			continue
		}
		parsed := strings.SplitN(part, ":", 2)
		key := wireCodec.Decode(parsed[0])
		val := ""
		if 2 == len(parsed) {
			val = wireCodec.Decode(parsed[1])
		}
		if header, ok := headerFromWire(key, val); ok {
			headers.Add(header)
		}
	}

	bodyText := body.String()
	if strings.HasSuffix(bodyText, "\x00") {
		//defensive cleanup against transport padding
		bodyText = strings.ReplaceAll(bodyText, "\x00", "")
	}
	return Frame{Envelope: envelope, Command: command, Headers: headers, Body: bodyText}
}

func errorFrame(envelope EnvelopeType, err error) Frame {
	return Frame{
		Envelope: envelope,
		Command:  CommandError,
		Headers:  Headers{Message(err.Error())},
	}
}
