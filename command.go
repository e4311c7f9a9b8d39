package stompwire

//Command is one of the stomp protocol verbs. The wire token is the exact
//uppercase name so the type doubles as the token.
type Command string

const (
	//client originated commands
	CommandConnect     Command = "CONNECT"
	CommandDisconnect  Command = "DISCONNECT"
	CommandSubscribe   Command = "SUBSCRIBE"
	CommandUnsubscribe Command = "UNSUBSCRIBE"
	//server originated commands
	CommandConnected Command = "CONNECTED"
	CommandMessage   Command = "MESSAGE"
	CommandError     Command = "ERROR"
)

var commands = map[string]Command{
	"CONNECT":     CommandConnect,
	"DISCONNECT":  CommandDisconnect,
	"SUBSCRIBE":   CommandSubscribe,
	"UNSUBSCRIBE": CommandUnsubscribe,
	"CONNECTED":   CommandConnected,
	"MESSAGE":     CommandMessage,
	"ERROR":       CommandError,
}

//ParseCommand resolves a wire token to its Command. Unknown tokens are a BadCommandError.
func ParseCommand(token string) (Command, error) {
	if cmd, ok := commands[token]; ok {
		return cmd, nil
	}
	return "", BadCommandError(token)
}
