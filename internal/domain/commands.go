package domain

// ProactiveCommand is a fully decoded card command of one kind.
// It is stored verbatim in the command queue until its terminal response is built.
type ProactiveCommand interface {
	Header() CommandHeader
	Kind() CommandKind
	// Icons lists every icon the command asks the ME to show
	Icons() []IconID
}

// Header returns the header itself so that embedding it satisfies ProactiveCommand
func (h CommandHeader) Header() CommandHeader { return h }

func icons(ids ...IconID) []IconID {
	var out []IconID
	for _, id := range ids {
		if id.Present {
			out = append(out, id)
		}
	}
	return out
}

// DisplayText asks the ME to show a text on screen
type DisplayText struct {
	CommandHeader
	Duration          *Duration
	HighPriority      bool
	Icon              IconID
	ImmediateResponse bool
	Text              TextString
	WaitForUserClear  bool
}

func (DisplayText) Kind() CommandKind  { return KindDisplayText }
func (c DisplayText) Icons() []IconID { return icons(c.Icon) }

// InkeyResponse is the kind of single key the card expects
type InkeyResponse uint8

const (
	InkeyDigits InkeyResponse = iota
	InkeySMSAlphabet
	InkeyUCS2
	InkeyYesNo
)

// GetInkey asks the user for a single key
type GetInkey struct {
	CommandHeader
	Duration      *Duration
	HelpAvailable bool
	Icon          IconID
	Response      InkeyResponse
	Text          TextString
}

func (GetInkey) Kind() CommandKind  { return KindGetInkey }
func (c GetInkey) Icons() []IconID { return icons(c.Icon) }

// GetInput asks the user for a string
type GetInput struct {
	CommandHeader
	DefaultText   TextString
	DigitsOnly    bool
	HelpAvailable bool
	HideInput     bool
	Icon          IconID
	MaxLength     uint8
	MinLength     uint8
	Packed        bool
	Text          TextString
	UCS2          bool
}

func (GetInput) Kind() CommandKind  { return KindGetInput }
func (c GetInput) Icons() []IconID { return icons(c.Icon) }

// ResponseAlphabet is the alphabet the typed text is returned in
func (c GetInput) ResponseAlphabet() Alphabet {
	switch {
	case c.UCS2:
		return AlphabetUCS2
	case c.Packed:
		return AlphabetGSM7Packed
	default:
		return Alphabet8BitData
	}
}

// SelectItem asks the user to pick one item of a list
type SelectItem struct {
	CommandHeader
	Alpha            TextString
	DefaultItemID    uint8
	HelpAvailable    bool
	Icon             IconID
	ItemIcons        []IconID
	Items            []Item
	Presentation     uint8
	SoftKeyPreferred bool
}

func (SelectItem) Kind() CommandKind { return KindSelectItem }
func (c SelectItem) Icons() []IconID {
	return icons(append([]IconID{c.Icon}, c.ItemIcons...)...)
}

// SetupMenu installs the card's main menu
type SetupMenu struct {
	CommandHeader
	Alpha            TextString
	HelpAvailable    bool
	Icon             IconID
	ItemIcons        []IconID
	Items            []Item
	SoftKeyPreferred bool
}

func (SetupMenu) Kind() CommandKind { return KindSetupMenu }
func (c SetupMenu) Icons() []IconID {
	return icons(append([]IconID{c.Icon}, c.ItemIcons...)...)
}

// RemovesMenu reports whether the command carries no usable menu
func (c SetupMenu) RemovesMenu() bool {
	return len(c.Items) == 0 || (len(c.Items) == 1 && c.Items[0].Text.Empty())
}

// SetupCall asks the ME to place a call after user confirmation
type SetupCall struct {
	CommandHeader
	Address          string
	CapabilityConfig []byte
	CallMode         uint8
	ConfirmAlpha     TextString
	ConfirmIcon      IconID
	Redial           *Duration
	SetupAlpha       TextString
	SetupIcon        IconID
	SubAddress       []byte
}

func (SetupCall) Kind() CommandKind  { return KindSetupCall }
func (c SetupCall) Icons() []IconID { return icons(c.ConfirmIcon, c.SetupIcon) }

// SetupEventList subscribes the card to runtime events
type SetupEventList struct {
	CommandHeader
	Events []EventType
}

func (SetupEventList) Kind() CommandKind { return KindSetupEventList }
func (SetupEventList) Icons() []IconID   { return nil }

// SetupIdleModeText sets the text shown on the idle screen
type SetupIdleModeText struct {
	CommandHeader
	Icon IconID
	Text TextString
}

func (SetupIdleModeText) Kind() CommandKind  { return KindSetupIdleModeText }
func (c SetupIdleModeText) Icons() []IconID { return icons(c.Icon) }

// PlayTone asks the ME to play an audio tone
type PlayTone struct {
	CommandHeader
	Alpha    TextString
	Duration *Duration
	Icon     IconID
	Tone     uint8
	Vibrate  bool
}

func (PlayTone) Kind() CommandKind  { return KindPlayTone }
func (c PlayTone) Icons() []IconID { return icons(c.Icon) }

// SendSMS asks the ME to send a short message
type SendSMS struct {
	CommandHeader
	Address         string
	Alpha           TextString
	Icon            IconID
	PackingRequired bool
	TPDU            []byte
}

func (SendSMS) Kind() CommandKind  { return KindSendSMS }
func (c SendSMS) Icons() []IconID { return icons(c.Icon) }

// SendSS asks the ME to send a supplementary service string
type SendSS struct {
	CommandHeader
	Alpha    TextString
	Icon     IconID
	SSString string
}

func (SendSS) Kind() CommandKind  { return KindSendSS }
func (c SendSS) Icons() []IconID { return icons(c.Icon) }

// SendUSSD asks the ME to send a USSD string
type SendUSSD struct {
	CommandHeader
	Alpha TextString
	Icon  IconID
	USSD  TextString
}

func (SendUSSD) Kind() CommandKind  { return KindSendUSSD }
func (c SendUSSD) Icons() []IconID { return icons(c.Icon) }

// SendDTMF asks the ME to send DTMF digits on the active call
type SendDTMF struct {
	CommandHeader
	Alpha TextString
	DTMF  string
	Icon  IconID
}

func (SendDTMF) Kind() CommandKind  { return KindSendDTMF }
func (c SendDTMF) Icons() []IconID { return icons(c.Icon) }

// BrowserMode is the launch browser qualifier
type BrowserMode uint8

const (
	BrowserLaunchIfNotLaunched BrowserMode = 0x00
	BrowserUseExisting         BrowserMode = 0x02
	BrowserCloseExisting       BrowserMode = 0x03
)

// LaunchBrowser asks the ME to open a URL after user confirmation
type LaunchBrowser struct {
	CommandHeader
	Alpha     TextString
	Bearers   []uint8
	BrowserID uint8
	Gateway   TextString
	Icon      IconID
	Mode      BrowserMode
	URL       string
}

func (LaunchBrowser) Kind() CommandKind  { return KindLaunchBrowser }
func (c LaunchBrowser) Icons() []IconID { return icons(c.Icon) }

// LocalInfoType is the provide local information qualifier
type LocalInfoType uint8

const (
	LocalInfoLocation         LocalInfoType = 0x00
	LocalInfoIMEI             LocalInfoType = 0x01
	LocalInfoNetworkMeasure   LocalInfoType = 0x02
	LocalInfoDateTime         LocalInfoType = 0x03
	LocalInfoLanguage         LocalInfoType = 0x04
	LocalInfoTimingAdvance    LocalInfoType = 0x05
	LocalInfoAccessTechnology LocalInfoType = 0x06
)

// ProvideLocalInfo asks the ME for local information
type ProvideLocalInfo struct {
	CommandHeader
	Info LocalInfoType
}

func (ProvideLocalInfo) Kind() CommandKind { return KindProvideLocalInfo }
func (ProvideLocalInfo) Icons() []IconID   { return nil }

// LanguageNotification tells the ME which language the card uses
type LanguageNotification struct {
	CommandHeader
	Language LanguageCode
	Specific bool
}

func (LanguageNotification) Kind() CommandKind { return KindLanguageNotification }
func (LanguageNotification) Icons() []IconID   { return nil }

// BearerDescription describes the bearer requested for a BIP channel
type BearerDescription struct {
	Parameters []byte
	Type       uint8
}

// TransportLevel is the transport protocol and port of a BIP channel
type TransportLevel struct {
	Port     uint16
	Protocol uint8
}

// OpenChannel asks the ME to open a BIP channel
type OpenChannel struct {
	CommandHeader
	Alpha              TextString
	Bearer             BearerDescription
	BufferSize         uint16
	DestinationAddress string
	Icon               IconID
	Login              TextString
	NetworkAccessName  string
	OnDemand           bool
	Password           TextString
	Transport          TransportLevel
}

func (OpenChannel) Kind() CommandKind  { return KindOpenChannel }
func (c OpenChannel) Icons() []IconID { return icons(c.Icon) }

// CloseChannel asks the ME to close the channel named by the destination device
type CloseChannel struct {
	CommandHeader
	Alpha TextString
	Icon  IconID
}

func (CloseChannel) Kind() CommandKind  { return KindCloseChannel }
func (c CloseChannel) Icons() []IconID { return icons(c.Icon) }

// ReceiveData asks the ME for buffered channel data
type ReceiveData struct {
	CommandHeader
	Alpha  TextString
	Icon   IconID
	Length uint8
}

func (ReceiveData) Kind() CommandKind  { return KindReceiveData }
func (c ReceiveData) Icons() []IconID { return icons(c.Icon) }

// SendData asks the ME to write data on a channel
type SendData struct {
	CommandHeader
	Alpha     TextString
	Data      []byte
	Icon      IconID
	Immediate bool
}

func (SendData) Kind() CommandKind  { return KindSendData }
func (c SendData) Icons() []IconID { return icons(c.Icon) }

// GetChannelStatus asks the ME for the status of every channel
type GetChannelStatus struct {
	CommandHeader
}

func (GetChannelStatus) Kind() CommandKind { return KindGetChannelStatus }
func (GetChannelStatus) Icons() []IconID   { return nil }

// RefreshMode is the refresh qualifier
type RefreshMode uint8

const (
	RefreshInitFullFileChange RefreshMode = 0x00
	RefreshFileChange         RefreshMode = 0x01
	RefreshInitFileChange     RefreshMode = 0x02
	RefreshInit               RefreshMode = 0x03
	RefreshReset              RefreshMode = 0x04
	RefreshAppReset           RefreshMode = 0x05
	RefreshSessionReset       RefreshMode = 0x06
)

// Refresh tells the ME that card files changed
type Refresh struct {
	CommandHeader
	AID   []byte
	Alpha TextString
	Files []string
	Icon  IconID
	Mode  RefreshMode
}

func (Refresh) Kind() CommandKind  { return KindRefresh }
func (c Refresh) Icons() []IconID { return icons(c.Icon) }

// MoreTime asks for more processing time; it carries no data
type MoreTime struct {
	CommandHeader
}

func (MoreTime) Kind() CommandKind { return KindMoreTime }
func (MoreTime) Icons() []IconID   { return nil }
