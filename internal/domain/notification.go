package domain

// Notification is the application-facing payload produced for one proactive command.
// It carries only what the application needs to present the command.
type Notification interface {
	ID() int
	Kind() CommandKind
}

// NotificationHeader carries the correlation id of the command
type NotificationHeader struct {
	CommandID int `json:"command_id"`
}

// ID returns the correlation id
func (h NotificationHeader) ID() int { return h.CommandID }

// MenuItem is a decoded menu or list entry
type MenuItem struct {
	ID   uint8  `json:"id"`
	Text string `json:"text"`
}

type DisplayTextNotification struct {
	NotificationHeader
	Duration             int    `json:"duration_ms"`
	HighPriority         bool   `json:"high_priority"`
	Icon                 IconID `json:"icon"`
	ImmediateResponse    bool   `json:"immediate_response"`
	Text                 string `json:"text"`
	TextLength           int    `json:"text_length"`
	UserResponseRequired bool   `json:"user_response_required"`
}

func (DisplayTextNotification) Kind() CommandKind { return KindDisplayText }

type GetInkeyNotification struct {
	NotificationHeader
	Duration      int           `json:"duration_ms"`
	HelpAvailable bool          `json:"help_available"`
	Icon          IconID        `json:"icon"`
	Response      InkeyResponse `json:"response"`
	Text          string        `json:"text"`
	TextLength    int           `json:"text_length"`
}

func (GetInkeyNotification) Kind() CommandKind { return KindGetInkey }

type GetInputNotification struct {
	NotificationHeader
	DefaultText   string `json:"default_text"`
	DigitsOnly    bool   `json:"digits_only"`
	HelpAvailable bool   `json:"help_available"`
	HideInput     bool   `json:"hide_input"`
	Icon          IconID `json:"icon"`
	MaxLength     int    `json:"max_length"`
	MinLength     int    `json:"min_length"`
	Text          string `json:"text"`
	TextLength    int    `json:"text_length"`
	UCS2          bool   `json:"ucs2"`
}

func (GetInputNotification) Kind() CommandKind { return KindGetInput }

type SelectItemNotification struct {
	NotificationHeader
	DefaultItemID uint8      `json:"default_item_id"`
	HelpAvailable bool       `json:"help_available"`
	Icon          IconID     `json:"icon"`
	Items         []MenuItem `json:"items"`
	Title         string     `json:"title"`
}

func (SelectItemNotification) Kind() CommandKind { return KindSelectItem }

type SetupMenuNotification struct {
	NotificationHeader
	HelpAvailable bool       `json:"help_available"`
	Icon          IconID     `json:"icon"`
	Items         []MenuItem `json:"items"`
	Title         string     `json:"title"`
}

func (SetupMenuNotification) Kind() CommandKind { return KindSetupMenu }

// SetupCallNotification is emitted twice: first as a confirmation prompt,
// then with Execute set once the user accepted.
type SetupCallNotification struct {
	NotificationHeader
	Address     string `json:"address"`
	CallMode    uint8  `json:"call_mode"`
	CallText    string `json:"call_text"`
	ConfirmText string `json:"confirm_text"`
	Execute     bool   `json:"execute"`
	Icon        IconID `json:"icon"`
}

func (SetupCallNotification) Kind() CommandKind { return KindSetupCall }

type SetupEventListNotification struct {
	NotificationHeader
	Events []EventType `json:"events"`
}

func (SetupEventListNotification) Kind() CommandKind { return KindSetupEventList }

type SetupIdleModeTextNotification struct {
	NotificationHeader
	Icon IconID `json:"icon"`
	Text string `json:"text"`
}

func (SetupIdleModeTextNotification) Kind() CommandKind { return KindSetupIdleModeText }

type PlayToneNotification struct {
	NotificationHeader
	Duration int    `json:"duration_ms"`
	Icon     IconID `json:"icon"`
	Text     string `json:"text"`
	Tone     uint8  `json:"tone"`
	Vibrate  bool   `json:"vibrate"`
}

func (PlayToneNotification) Kind() CommandKind { return KindPlayTone }

type SendSMSNotification struct {
	NotificationHeader
	Address         string `json:"address"`
	Icon            IconID `json:"icon"`
	PackingRequired bool   `json:"packing_required"`
	Text            string `json:"text"`
	TPDU            []byte `json:"tpdu"`
}

func (SendSMSNotification) Kind() CommandKind { return KindSendSMS }

type SendSSNotification struct {
	NotificationHeader
	Icon     IconID `json:"icon"`
	SSString string `json:"ss_string"`
	Text     string `json:"text"`
}

func (SendSSNotification) Kind() CommandKind { return KindSendSS }

type SendUSSDNotification struct {
	NotificationHeader
	Icon IconID `json:"icon"`
	Text string `json:"text"`
	USSD string `json:"ussd"`
}

func (SendUSSDNotification) Kind() CommandKind { return KindSendUSSD }

type SendDTMFNotification struct {
	NotificationHeader
	DTMF string `json:"dtmf"`
	Icon IconID `json:"icon"`
	Text string `json:"text"`
}

func (SendDTMFNotification) Kind() CommandKind { return KindSendDTMF }

type LaunchBrowserNotification struct {
	NotificationHeader
	Execute bool        `json:"execute"`
	Gateway string      `json:"gateway"`
	Icon    IconID      `json:"icon"`
	Mode    BrowserMode `json:"mode"`
	Text    string      `json:"text"`
	URL     string      `json:"url"`
}

func (LaunchBrowserNotification) Kind() CommandKind { return KindLaunchBrowser }

type ProvideLocalInfoNotification struct {
	NotificationHeader
	Info LocalInfoType `json:"info"`
}

func (ProvideLocalInfoNotification) Kind() CommandKind { return KindProvideLocalInfo }

type LanguageChangeNotification struct {
	NotificationHeader
	Language LanguageCode `json:"language"`
	Specific bool         `json:"specific"`
}

func (LanguageChangeNotification) Kind() CommandKind { return KindLanguageNotification }

type OpenChannelNotification struct {
	NotificationHeader
	BearerType         uint8  `json:"bearer_type"`
	BufferSize         uint16 `json:"buffer_size"`
	DestinationAddress string `json:"destination_address"`
	Execute            bool   `json:"execute"`
	Icon               IconID `json:"icon"`
	NetworkAccessName  string `json:"network_access_name"`
	OnDemand           bool   `json:"on_demand"`
	Text               string `json:"text"`
}

func (OpenChannelNotification) Kind() CommandKind { return KindOpenChannel }

type CloseChannelNotification struct {
	NotificationHeader
	ChannelID uint8  `json:"channel_id"`
	Icon      IconID `json:"icon"`
	Text      string `json:"text"`
}

func (CloseChannelNotification) Kind() CommandKind { return KindCloseChannel }

type ReceiveDataNotification struct {
	NotificationHeader
	ChannelID uint8  `json:"channel_id"`
	Icon      IconID `json:"icon"`
	Length    uint8  `json:"length"`
	Text      string `json:"text"`
}

func (ReceiveDataNotification) Kind() CommandKind { return KindReceiveData }

type SendDataNotification struct {
	NotificationHeader
	ChannelID uint8  `json:"channel_id"`
	Data      []byte `json:"data"`
	Icon      IconID `json:"icon"`
	Immediate bool   `json:"immediate"`
	Text      string `json:"text"`
}

func (SendDataNotification) Kind() CommandKind { return KindSendData }

type GetChannelStatusNotification struct {
	NotificationHeader
}

func (GetChannelStatusNotification) Kind() CommandKind { return KindGetChannelStatus }

type RefreshNotification struct {
	NotificationHeader
	Files []string    `json:"files"`
	Icon  IconID      `json:"icon"`
	Mode  RefreshMode `json:"mode"`
	Text  string      `json:"text"`
}

func (RefreshNotification) Kind() CommandKind { return KindRefresh }

type MoreTimeNotification struct {
	NotificationHeader
}

func (MoreTimeNotification) Kind() CommandKind { return KindMoreTime }
