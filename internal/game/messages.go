package game

// Message colors, as hex strings the renderer resolves through gamedata.
const (
	ColorWhite     = "#FFFFFF"
	ColorRed       = "#FF0000"
	ColorDarkRed   = "#BF0000"
	ColorGreen     = "#00FF00"
	ColorYellow    = "#FFFF00"
	ColorOrange    = "#FFA500"
	ColorViolet    = "#EE82EE"
	ColorLightBlue = "#5FAFFF"
)

// Message is one entry of the in-game log.
type Message struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// MessageLog is the ordered in-game message history. It is game state and is
// saved with the rest of it; operational diagnostics go to the zap logger
// instead.
type MessageLog struct {
	Messages []Message `json:"messages"`
}

// NewMessageLog creates an empty log.
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Add appends a message.
func (l *MessageLog) Add(text, color string) {
	l.Messages = append(l.Messages, Message{Text: text, Color: color})
}

// Tail returns up to the n most recent messages, oldest first.
func (l *MessageLog) Tail(n int) []Message {
	if n >= len(l.Messages) {
		return l.Messages
	}
	return l.Messages[len(l.Messages)-n:]
}

// Len returns the number of messages logged so far.
func (l *MessageLog) Len() int {
	return len(l.Messages)
}
