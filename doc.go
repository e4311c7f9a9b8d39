package stompwire

//Stompwire is a codec for stomp frames carried over a sockjs style transport.
//It only translates: raw payloads coming off the transport become Frames, and
//Frames built locally serialize back to stomp wire text. Connections,
//subscriptions and dispatch live with the caller.

//Examples:

//Decode whatever the transport hands over. Decode never fails, a malformed
//payload comes back as an ERROR frame with the reason in its message header.

/*

	frame := stompwire.Decode(payload)
	if frame.Command == stompwire.CommandError {
		log.Println("bad frame:", frame.Message())
		return
	}
	handle(frame)

*/

//Build and serialize a frame for sending. The transport wraps it if the server
//side expects wrapping, the codec never does.

/*

	frame := stompwire.NewFrame(stompwire.CommandSubscribe, stompwire.NewHeaders(
		stompwire.DestinationId("sub-0"),
		stompwire.Destination("/topic/foo"),
	), "")
	socket.Send(frame.Serialize())

*/
