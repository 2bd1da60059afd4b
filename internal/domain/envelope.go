package domain

import "fmt"

// EventType is an event list value as used in setup event list and event download
type EventType uint8

const (
	EventMTCall              EventType = 0x00
	EventCallConnected       EventType = 0x01
	EventCallDisconnected    EventType = 0x02
	EventLocationStatus      EventType = 0x03
	EventUserActivity        EventType = 0x04
	EventIdleScreenAvailable EventType = 0x05
	EventCardReaderStatus    EventType = 0x06
	EventLanguageSelection   EventType = 0x07
	EventBrowserTermination  EventType = 0x08
	EventDataAvailable       EventType = 0x09
	EventChannelStatus       EventType = 0x0A
)

var eventTypeNames = map[EventType]string{
	EventMTCall:              "mt_call",
	EventCallConnected:       "call_connected",
	EventCallDisconnected:    "call_disconnected",
	EventLocationStatus:      "location_status",
	EventUserActivity:        "user_activity",
	EventIdleScreenAvailable: "idle_screen_available",
	EventCardReaderStatus:    "card_reader_status",
	EventLanguageSelection:   "language_selection",
	EventBrowserTermination:  "browser_termination",
	EventDataAvailable:       "data_available",
	EventChannelStatus:       "channel_status",
}

func (e EventType) String() string {
	if name, ok := eventTypeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", uint8(e))
}

// ParseEventType resolves an event type from its snake_case name
func ParseEventType(name string) (EventType, bool) {
	for e, n := range eventTypeNames {
		if n == name {
			return e, true
		}
	}
	return 0, false
}

// BrowserTerminationCause is the cause carried by a browser termination event
type BrowserTerminationCause uint8

const (
	BrowserTerminatedByUser  BrowserTerminationCause = 0x00
	BrowserTerminatedByError BrowserTerminationCause = 0x01
)

// ChannelStatus is the status of one BIP channel
type ChannelStatus struct {
	ChannelID   uint8
	Established bool
	LinkDropped bool
}

// Bytes returns the two-byte channel status data object value
func (s ChannelStatus) Bytes() [2]byte {
	b := [2]byte{s.ChannelID & 0x07, 0x00}
	if s.Established {
		b[0] |= 0x80
	}
	if s.LinkDropped {
		b[1] = 0x05
	}
	return b
}

// RuntimeEvent is an ME-observed event reported by the application tier
type RuntimeEvent struct {
	BrowserCause BrowserTerminationCause
	Channel      ChannelStatus
	DataLength   uint8
	Devices      DeviceIdentities
	Language     string
	Type         EventType
}

// EventDownloadEnvelope reports one runtime event to the card.
// Only the field matching Event is populated.
type EventDownloadEnvelope struct {
	BrowserCause        *BrowserTerminationCause
	ChannelDataLength   *uint8
	ChannelStatus       *ChannelStatus
	Devices             DeviceIdentities
	Event               EventType
	IdleScreenAvailable bool
	Language            string
	UserActivity        bool
}

// MenuSelectionEnvelope reports a setup menu choice to the card
type MenuSelectionEnvelope struct {
	Devices       DeviceIdentities
	HelpRequested bool
	ItemID        uint8
}
