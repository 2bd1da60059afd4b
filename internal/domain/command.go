package domain

import (
	"fmt"
	"time"
)

// CommandKind is the type-of-command byte of a proactive command
type CommandKind uint8

const (
	KindRefresh              CommandKind = 0x01
	KindMoreTime             CommandKind = 0x02
	KindSetupEventList       CommandKind = 0x05
	KindSetupCall            CommandKind = 0x10
	KindSendSS               CommandKind = 0x11
	KindSendUSSD             CommandKind = 0x12
	KindSendSMS              CommandKind = 0x13
	KindSendDTMF             CommandKind = 0x14
	KindLaunchBrowser        CommandKind = 0x15
	KindPlayTone             CommandKind = 0x20
	KindDisplayText          CommandKind = 0x21
	KindGetInkey             CommandKind = 0x22
	KindGetInput             CommandKind = 0x23
	KindSelectItem           CommandKind = 0x24
	KindSetupMenu            CommandKind = 0x25
	KindProvideLocalInfo     CommandKind = 0x26
	KindSetupIdleModeText    CommandKind = 0x28
	KindLanguageNotification CommandKind = 0x35
	KindOpenChannel          CommandKind = 0x40
	KindCloseChannel         CommandKind = 0x41
	KindReceiveData          CommandKind = 0x42
	KindSendData             CommandKind = 0x43
	KindGetChannelStatus     CommandKind = 0x44
)

var commandKindNames = map[CommandKind]string{
	KindRefresh:              "refresh",
	KindMoreTime:             "more_time",
	KindSetupEventList:       "setup_event_list",
	KindSetupCall:            "setup_call",
	KindSendSS:               "send_ss",
	KindSendUSSD:             "send_ussd",
	KindSendSMS:              "send_sms",
	KindSendDTMF:             "send_dtmf",
	KindLaunchBrowser:        "launch_browser",
	KindPlayTone:             "play_tone",
	KindDisplayText:          "display_text",
	KindGetInkey:             "get_inkey",
	KindGetInput:             "get_input",
	KindSelectItem:           "select_item",
	KindSetupMenu:            "setup_menu",
	KindProvideLocalInfo:     "provide_local_info",
	KindSetupIdleModeText:    "setup_idle_mode_text",
	KindLanguageNotification: "language_notification",
	KindOpenChannel:          "open_channel",
	KindCloseChannel:         "close_channel",
	KindReceiveData:          "receive_data",
	KindSendData:             "send_data",
	KindGetChannelStatus:     "get_channel_status",
}

func (k CommandKind) String() string {
	if name, ok := commandKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", uint8(k))
}

// ParseCommandKind resolves a kind from its snake_case name
func ParseCommandKind(name string) (CommandKind, bool) {
	for kind, n := range commandKindNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

// Device is a device identity as carried in the device identities data object
type Device uint8

const (
	DeviceKeypad   Device = 0x01
	DeviceDisplay  Device = 0x02
	DeviceEarpiece Device = 0x03
	DeviceChannel1 Device = 0x21
	DeviceChannel7 Device = 0x27
	DeviceUICC     Device = 0x81
	DeviceME       Device = 0x82
	DeviceNetwork  Device = 0x83
)

// ChannelID returns the BIP channel number for channel devices, or 0
func (d Device) ChannelID() uint8 {
	if d >= DeviceChannel1 && d <= DeviceChannel7 {
		return uint8(d-DeviceChannel1) + 1
	}
	return 0
}

// CommandDetails identifies one proactive command instance
type CommandDetails struct {
	Number    uint8
	Kind      CommandKind
	Qualifier uint8
}

// DeviceIdentities holds the source and destination of a message
type DeviceIdentities struct {
	Source      Device
	Destination Device
}

// Swap returns the pair reversed, used when answering the card
func (d DeviceIdentities) Swap() DeviceIdentities {
	return DeviceIdentities{Source: d.Destination, Destination: d.Source}
}

// CommandHeader is common to every proactive command
type CommandHeader struct {
	Details CommandDetails
	Devices DeviceIdentities
}

// Alphabet is the coding scheme of a card text string
type Alphabet uint8

const (
	AlphabetUnspecified Alphabet = iota
	AlphabetGSM7Packed
	Alphabet8BitData
	AlphabetUCS2
)

func (a Alphabet) String() string {
	switch a {
	case AlphabetGSM7Packed:
		return "gsm7_packed"
	case Alphabet8BitData:
		return "8bit_data"
	case AlphabetUCS2:
		return "ucs2"
	default:
		return "unspecified"
	}
}

// TextString is card text before character-set conversion
type TextString struct {
	Alphabet Alphabet
	Data     []byte
}

// Empty reports whether the string carries no text bytes
func (t TextString) Empty() bool {
	return len(t.Data) == 0
}

// EffectiveAlphabet substitutes 8-bit data when bytes exist without an alphabet
func (t TextString) EffectiveAlphabet() Alphabet {
	if t.Alphabet == AlphabetUnspecified && len(t.Data) > 0 {
		return Alphabet8BitData
	}
	return t.Alphabet
}

// IconCoding is the image coding scheme of an icon record
type IconCoding uint8

const (
	IconCodingBasic  IconCoding = 0x11
	IconCodingColour IconCoding = 0x21
)

// IconID references an icon on the card
type IconID struct {
	Present         bool
	SelfExplanatory bool
	Identifier      uint8
	Coding          IconCoding
}

// RequiresText reports whether the icon cannot be shown without accompanying text
func (i IconID) RequiresText() bool {
	return i.Present && !i.SelfExplanatory
}

// IsColour reports whether the icon uses colour coding
func (i IconID) IsColour() bool {
	return i.Present && i.Coding == IconCodingColour
}

// TimeUnit is the unit of a duration data object
type TimeUnit uint8

const (
	UnitMinutes TimeUnit = 0x00
	UnitSeconds TimeUnit = 0x01
	UnitTenths  TimeUnit = 0x02
)

// Duration is a card-supplied interval
type Duration struct {
	Unit     TimeUnit
	Interval uint8
}

// Value converts the duration to a time.Duration
func (d Duration) Value() time.Duration {
	n := time.Duration(d.Interval)
	switch d.Unit {
	case UnitMinutes:
		return n * time.Minute
	case UnitSeconds:
		return n * time.Second
	case UnitTenths:
		return n * 100 * time.Millisecond
	default:
		return 0
	}
}

// Item is one entry of a menu or selection list
type Item struct {
	ID   uint8
	Text TextString
}
