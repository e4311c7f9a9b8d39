package stompwire

import (
	"strconv"
	"strings"
)

//canonical wire keys for the known header kinds
const (
	headerKeyAcceptVersion = "accept-version"
	headerKeyHeartBeat     = "heart-beat"
	headerKeyDestination   = "destination"
	headerKeyId            = "id"
	headerKeyVersion       = "version"
	headerKeySubscription  = "subscription"
	headerKeyMessageId     = "message-id"
	headerKeyContentLength = "content-length"
	headerKeyMessage       = "message"
)

type headerKind int

const (
	headerAcceptVersion headerKind = iota
	headerHeartBeat
	headerDestination
	headerDestinationId
	headerVersion
	headerSubscription
	headerMessageId
	headerContentLength
	headerMessage
	headerCustom
)

//A Header is one key:value pair on the wire. The kind fixes the wire key, the
//value is the single string payload it carries. Identity is the wire key alone,
//the value plays no part in equality.
type Header struct {
	kind      headerKind
	customKey string
	value     string
}

func AcceptVersion(version string) Header {
	return Header{kind: headerAcceptVersion, value: version}
}

func HeartBeat(value string) Header {
	return Header{kind: headerHeartBeat, value: value}
}

func Destination(path string) Header {
	return Header{kind: headerDestination, value: path}
}

func DestinationId(id string) Header {
	return Header{kind: headerDestinationId, value: id}
}

//Custom carries any key not covered by the known kinds. It is only ever built
//by callers for outgoing frames, Decode never produces one.
func Custom(key, value string) Header {
	return Header{kind: headerCustom, customKey: key, value: value}
}

func Version(version string) Header {
	return Header{kind: headerVersion, value: version}
}

func Subscription(subId string) Header {
	return Header{kind: headerSubscription, value: subId}
}

func MessageId(id string) Header {
	return Header{kind: headerMessageId, value: id}
}

func ContentLength(length int) Header {
	return Header{kind: headerContentLength, value: strconv.Itoa(length)}
}

func Message(message string) Header {
	return Header{kind: headerMessage, value: message}
}

//Key returns the canonical wire key for the header kind
func (h Header) Key() string {
	switch h.kind {
	case headerAcceptVersion:
		return headerKeyAcceptVersion
	case headerHeartBeat:
		return headerKeyHeartBeat
	case headerDestination:
		return headerKeyDestination
	case headerDestinationId:
		return headerKeyId
	case headerVersion:
		return headerKeyVersion
	case headerSubscription:
		return headerKeySubscription
	case headerMessageId:
		return headerKeyMessageId
	case headerContentLength:
		return headerKeyContentLength
	case headerMessage:
		return headerKeyMessage
	default:
		return h.customKey
	}
}

func (h Header) Value() string {
	return h.value
}

//IsMessage reports whether this is the message header, used by Frame.Message
func (h Header) IsMessage() bool {
	return headerMessage == h.kind
}

//Equal is key identity only. Two headers with the same wire key are the same
//header no matter their values.
func (h Header) Equal(other Header) bool {
	return h.Key() == other.Key()
}

//headerFromWire resolves an incoming key:value pair to a Header. Only the server
//side keys are recognised, anything else returns false and the pair is dropped.
//In particular accept-version, id and custom keys never come back off the wire.
func headerFromWire(key, value string) (Header, bool) {
	switch key {
	case headerKeyVersion:
		return Version(value), true
	case headerKeySubscription:
		return Subscription(value), true
	case headerKeyMessageId:
		return MessageId(value), true
	case headerKeyContentLength:
		return Header{kind: headerContentLength, value: value}, true
	case headerKeyMessage:
		return Message(value), true
	case headerKeyDestination:
		return Destination(value), true
	case headerKeyHeartBeat:
		return HeartBeat(value), true
	}
	return Header{}, false
}

//Headers is a key unique collection of Header. Insertion order is kept, and the
//first header added for a key wins, later duplicates are discarded.
type Headers []Header

func NewHeaders(headers ...Header) Headers {
	collected := Headers{}
	for _, h := range headers {
		collected.Add(h)
	}
	return collected
}

//Add inserts the header unless one with the same wire key is already present.
//It reports whether the header went in, a false means the duplicate was dropped.
func (hs *Headers) Add(header Header) bool {
	if hs.Contains(header.Key()) {
		return false
	}
	*hs = append(*hs, header)
	return true
}

func (hs Headers) Contains(key string) bool {
	_, ok := hs.Get(key)
	return ok
}

func (hs Headers) Get(key string) (Header, bool) {
	for _, h := range hs {
		if key == h.Key() {
			return h, true
		}
	}
	return Header{}, false
}

//header keys and values carry \ : and newline escaped on the wire as per stomp 1.1
type headerEncoderDecoder struct{}

var headerEscaper = strings.NewReplacer("\\", "\\\\", "\n", "\\n", ":", "\\c")

func (ed headerEncoderDecoder) Encode(val string) string {
	return headerEscaper.Replace(val)
}

func (ed headerEncoderDecoder) Decode(val string) string {
	var out strings.Builder
	for i := 0; i < len(val); i++ {
		c := val[i]
		if '\\' == c && i+1 < len(val) {
			switch val[i+1] {
			case '\\':
				out.WriteByte('\\')
				i++
				continue
			case 'n':
				out.WriteByte('\n')
				i++
				continue
			case 'c':
				out.WriteByte(':')
				i++
				continue
			}
		}
		out.WriteByte(c)
	}
	return out.String()
}

var wireCodec = headerEncoderDecoder{}
