package stompwire

//decode error kinds. None of these escape Decode, they end up as the message
//header of the ERROR frame it falls back to.

type BadEnvelopeError string
type BadCommandError string
type BadFrameError string

func (be BadEnvelopeError) Error() string {
	return "unknown transport envelope marker : " + string(be)
}

func (bc BadCommandError) Error() string {
	return "unknown command token : " + string(bc)
}

func (bf BadFrameError) Error() string {
	return "bad frame received from transport : " + string(bf)
}
