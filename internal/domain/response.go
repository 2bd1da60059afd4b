package domain

import "time"

// TerminalResponse is the ME's reply to one proactive command
type TerminalResponse struct {
	Data    ResponseData
	Details CommandDetails
	Devices DeviceIdentities
	Result  Result
}

// ResponseData is the kind-specific part of a terminal response
type ResponseData interface {
	responseData()
}

// TextResponse carries text typed by the user or returned by the network
type TextResponse struct {
	Text TextString
}

// ItemResponse carries the identifier of a chosen item
type ItemResponse struct {
	ItemID uint8
}

// ChannelResponse answers open channel
type ChannelResponse struct {
	Bearer     BearerDescription
	BufferSize uint16
	Status     ChannelStatus
}

// ChannelDataResponse answers receive data
type ChannelDataResponse struct {
	Data      []byte
	Remaining uint8
}

// ChannelLengthResponse answers send data with the free space left in the buffer
type ChannelLengthResponse struct {
	Available uint8
}

// ChannelStatusResponse answers get channel status
type ChannelStatusResponse struct {
	Statuses []ChannelStatus
}

// LocalInfo is the local information gathered by the application tier
type LocalInfo struct {
	AccessTechnology uint8
	DateTime         time.Time
	IMEI             string
	Language         string
	Location         []byte
}

// LocalInfoResponse answers provide local information
type LocalInfoResponse struct {
	Info LocalInfo
}

func (TextResponse) responseData()          {}
func (ItemResponse) responseData()          {}
func (ChannelResponse) responseData()       {}
func (ChannelDataResponse) responseData()   {}
func (ChannelLengthResponse) responseData() {}
func (ChannelStatusResponse) responseData() {}
func (LocalInfoResponse) responseData()     {}
