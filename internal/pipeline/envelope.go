package pipeline

import "github.com/flarebyte/greet/internal/greeting"

// Envelope carries one greeting through the stages.
type Envelope struct {
	Greeting greeting.Greeting
	// Text is the decorated, unstyled greeting text.
	Text string
	// Body is Text after styling.
	Body string
	// Banner is the styled banner, empty when banners are off.
	Banner string
	// Block is the composed output of the greeting.
	Block string
	// Trail lists the stages that ran, in order.
	Trail []string
}

// NewEnvelope starts an envelope for g.
func NewEnvelope(g greeting.Greeting) Envelope {
	return Envelope{Greeting: g, Text: g.Text}
}
