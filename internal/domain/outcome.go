package domain

// Outcome is what the application tier reports for an outstanding command
type Outcome interface {
	outcome()
}

// ExecutionResult reports that the application ran the command
type ExecutionResult struct {
	// Problem is optional; a failing General gets "no specific cause" when nil
	Problem Problem
	General GeneralResult

	// Affirmative answers a yes/no get inkey; Text is ignored for those
	Affirmative       bool
	BufferSize        uint16
	Channel           ChannelStatus
	ChannelData       []byte
	ChannelDataLength uint8
	ChannelStatuses   []ChannelStatus
	LocalInfo         *LocalInfo
	Text              string
	TextAlphabet      Alphabet
}

// ConfirmationKind is the user's answer to a prompt
type ConfirmationKind uint8

const (
	ConfirmAccept ConfirmationKind = iota
	ConfirmDecline
	ConfirmHelp
	ConfirmTimeout
	ConfirmEndSession
)

func (k ConfirmationKind) String() string {
	switch k {
	case ConfirmAccept:
		return "accept"
	case ConfirmDecline:
		return "decline"
	case ConfirmHelp:
		return "help"
	case ConfirmTimeout:
		return "timeout"
	case ConfirmEndSession:
		return "end_session"
	default:
		return "unknown"
	}
}

// ParseConfirmationKind resolves a confirmation kind from its name
func ParseConfirmationKind(name string) (ConfirmationKind, bool) {
	for k := ConfirmAccept; k <= ConfirmEndSession; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Confirmation reports the user's reaction to a prompt
type Confirmation struct {
	// Affirmative answers a yes/no get inkey
	Affirmative bool
	ItemID      uint8
	Kind        ConfirmationKind
	Text        string
}

// DisplayFailure reports that the application could not present the prompt
type DisplayFailure struct{}

func (ExecutionResult) outcome() {}
func (Confirmation) outcome()    {}
func (DisplayFailure) outcome()  {}
