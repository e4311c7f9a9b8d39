package stompwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

//encoded key decoded value
var testEncodeData = map[string]string{
	"astring":             "astring",
	"\\\\":                "\\",
	"\\n":                 "\n",
	"\\c":                 ":",
	"\\\\\\n\\c":          "\\\n:",
	"\\c\\n\\\\":          ":\n\\",
	"\\\\\\c":             "\\:",
	"c\\cc":               "c:c",
	"n\\nn":               "n\nn",
	"test\\cvalue\\ntest": "test:value\ntest",
}

func TestHeaders_encode(t *testing.T) {
	encoder := headerEncoderDecoder{}
	for to, from := range testEncodeData {
		enc := encoder.Encode(from)
		assert.Equal(t, to, enc, "expected encoded value")
	}
}

func TestHeaders_decode(t *testing.T) {
	decoder := headerEncoderDecoder{}
	for to, from := range testEncodeData {
		dec := decoder.Decode(to)
		assert.Equal(t, from, dec, "expected decoded value")
	}
}

func TestHeader_wireKeys(t *testing.T) {
	cases := []struct {
		header Header
		key    string
		value  string
	}{
		{AcceptVersion("1.1,1.2"), "accept-version", "1.1,1.2"},
		{HeartBeat("0,0"), "heart-beat", "0,0"},
		{Destination("/topic/foo"), "destination", "/topic/foo"},
		{DestinationId("sub-0"), "id", "sub-0"},
		{Version("1.2"), "version", "1.2"},
		{Subscription("sub-0"), "subscription", "sub-0"},
		{MessageId("msg-7"), "message-id", "msg-7"},
		{ContentLength(42), "content-length", "42"},
		{Message("oh no"), "message", "oh no"},
		{Custom("x-trace", "abc"), "x-trace", "abc"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.key, tc.header.Key(), "expected canonical wire key")
		assert.Equal(t, tc.value, tc.header.Value(), "expected carried value")
	}
}

func TestHeader_equalityIsKeyOnly(t *testing.T) {
	assert.True(t, Destination("/a").Equal(Destination("/b")), "same key should be equal regardless of value")
	assert.True(t, DestinationId("1").Equal(Custom("id", "2")), "custom with a known key collides with the known kind")
	assert.False(t, Destination("/a").Equal(Subscription("/a")), "different keys are never equal")
}

func TestHeaders_firstInsertWins(t *testing.T) {
	headers := Headers{}
	assert.True(t, headers.Add(Destination("/first")), "first insert should go in")
	assert.False(t, headers.Add(Destination("/second")), "duplicate key should be dropped")
	assert.Len(t, headers, 1, "expected a single header for the key")
	h, ok := headers.Get("destination")
	assert.True(t, ok, "expected the destination header to be present")
	assert.Equal(t, "/first", h.Value(), "first inserted value should survive")
}

func TestNewHeaders_dedupes(t *testing.T) {
	headers := NewHeaders(Message("one"), Message("two"), Version("1.2"))
	assert.Len(t, headers, 2, "duplicate message header should be discarded")
	h, _ := headers.Get("message")
	assert.Equal(t, "one", h.Value(), "first message header should win")
}

func TestHeaderFromWire(t *testing.T) {
	known := map[string]string{
		"version":        "1.2",
		"subscription":   "sub-0",
		"message-id":     "msg-1",
		"content-length": "12",
		"message":        "hello",
		"destination":    "/queue/q",
		"heart-beat":     "0,0",
	}
	for key, value := range known {
		h, ok := headerFromWire(key, value)
		assert.True(t, ok, "expected key to resolve: "+key)
		assert.Equal(t, key, h.Key(), "resolved header should keep the wire key")
		assert.Equal(t, value, h.Value(), "resolved header should keep the value")
	}

	//client only and custom keys never come back off the wire
	for _, key := range []string{"accept-version", "id", "x-custom", "login"} {
		_, ok := headerFromWire(key, "whatever")
		assert.False(t, ok, "did not expect key to resolve: "+key)
	}
}

func TestHeaderFromWire_isMessage(t *testing.T) {
	h, _ := headerFromWire("message", "boom")
	assert.True(t, h.IsMessage(), "message header should report IsMessage")
	v, _ := headerFromWire("version", "1.2")
	assert.False(t, v.IsMessage(), "other headers should not report IsMessage")
}
