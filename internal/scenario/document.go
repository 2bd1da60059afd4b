package scenario

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the yaml form of a scenario file
type Document struct {
	Description string     `yaml:"description"`
	Name        string     `yaml:"name"`
	Steps       []stepSpec `yaml:"steps"`
}

type stepSpec struct {
	line int

	Command    *commandSpec `yaml:"command"`
	Confirm    *confirmSpec `yaml:"confirm"`
	Display    *displaySpec `yaml:"display"`
	EndSession bool         `yaml:"end_session"`
	Event      *eventSpec   `yaml:"event"`
	Expect     *expectSpec  `yaml:"expect"`
	Label      string       `yaml:"label"`
	Language   *refSpec     `yaml:"language"`
	Menu       *menuSpec    `yaml:"menu"`
	Result     *resultSpec  `yaml:"result"`
}

// UnmarshalYAML keeps the line of each step for error messages
func (s *stepSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain stepSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = stepSpec(p)
	s.line = value.Line
	return nil
}

type expectSpec struct {
	Error  string `yaml:"error"`
	Result string `yaml:"result"`
	Sent   *bool  `yaml:"sent"`
}

type refSpec struct {
	Ref string `yaml:"ref"`
}

type textSpec struct {
	Alphabet string   `yaml:"alphabet"`
	Hex      hexBytes `yaml:"hex"`
	Value    string   `yaml:"value"`
}

// UnmarshalYAML accepts a plain scalar as 8-bit data text
func (t *textSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		t.Value = value.Value
		return nil
	}
	type plain textSpec
	return value.Decode((*plain)(t))
}

type iconSpec struct {
	Colour          bool  `yaml:"colour"`
	ID              uint8 `yaml:"id"`
	SelfExplanatory bool  `yaml:"self_explanatory"`
}

type durationSpec struct {
	Interval uint8  `yaml:"interval"`
	Unit     string `yaml:"unit"`
}

type itemSpec struct {
	ID   uint8    `yaml:"id"`
	Text textSpec `yaml:"text"`
}

type bearerSpec struct {
	Parameters hexBytes `yaml:"parameters"`
	Type       uint8    `yaml:"type"`
}

type transportSpec struct {
	Port     uint16 `yaml:"port"`
	Protocol uint8  `yaml:"protocol"`
}

type commandSpec struct {
	Kind        string `yaml:"kind"`
	Number      uint8  `yaml:"number"`
	Qualifier   uint8  `yaml:"qualifier"`
	Destination string `yaml:"destination"`

	AID                hexBytes       `yaml:"aid"`
	Address            string         `yaml:"address"`
	Alpha              *textSpec      `yaml:"alpha"`
	Bearer             *bearerSpec    `yaml:"bearer"`
	Bearers            []uint8        `yaml:"bearers"`
	BrowserID          uint8          `yaml:"browser_id"`
	BufferSize         uint16         `yaml:"buffer_size"`
	CallMode           uint8          `yaml:"call_mode"`
	CapabilityConfig   hexBytes       `yaml:"capability_config"`
	ConfirmAlpha       *textSpec      `yaml:"confirm_alpha"`
	ConfirmIcon        *iconSpec      `yaml:"confirm_icon"`
	Data               hexBytes       `yaml:"data"`
	DefaultItem        uint8          `yaml:"default_item"`
	DefaultText        *textSpec      `yaml:"default_text"`
	DestinationAddress string         `yaml:"destination_address"`
	DigitsOnly         bool           `yaml:"digits_only"`
	DTMF               string         `yaml:"dtmf"`
	Duration           *durationSpec  `yaml:"duration"`
	Events             []string       `yaml:"events"`
	Files              []string       `yaml:"files"`
	Gateway            *textSpec      `yaml:"gateway"`
	HelpAvailable      bool           `yaml:"help_available"`
	HideInput          bool           `yaml:"hide_input"`
	HighPriority       bool           `yaml:"high_priority"`
	Icon               *iconSpec      `yaml:"icon"`
	Immediate          bool           `yaml:"immediate"`
	ImmediateResponse  bool           `yaml:"immediate_response"`
	Info               uint8          `yaml:"info"`
	ItemIcons          []iconSpec     `yaml:"item_icons"`
	Items              []itemSpec     `yaml:"items"`
	Language           string         `yaml:"language"`
	Length             uint8          `yaml:"length"`
	Login              *textSpec      `yaml:"login"`
	MaxLength          uint8          `yaml:"max_length"`
	MinLength          uint8          `yaml:"min_length"`
	Mode               uint8          `yaml:"mode"`
	NetworkAccessName  string         `yaml:"network_access_name"`
	OnDemand           bool           `yaml:"on_demand"`
	PackingRequired    bool           `yaml:"packing_required"`
	Packed             bool           `yaml:"packed"`
	Password           *textSpec      `yaml:"password"`
	Presentation       uint8          `yaml:"presentation"`
	Redial             *durationSpec  `yaml:"redial"`
	Response           string         `yaml:"response"`
	SetupIcon          *iconSpec      `yaml:"setup_icon"`
	SoftKeyPreferred   bool           `yaml:"soft_key_preferred"`
	Specific           bool           `yaml:"specific"`
	SSString           string         `yaml:"ss_string"`
	SubAddress         hexBytes       `yaml:"subaddress"`
	Text               *textSpec      `yaml:"text"`
	Tone               uint8          `yaml:"tone"`
	TPDU               hexBytes       `yaml:"tpdu"`
	Transport          *transportSpec `yaml:"transport"`
	UCS2               bool           `yaml:"ucs2"`
	URL                string         `yaml:"url"`
	Vibrate            bool           `yaml:"vibrate"`
	WaitForUserClear   bool           `yaml:"wait_for_user_clear"`
}

type confirmSpec struct {
	Affirmative bool   `yaml:"affirmative"`
	Item        uint8  `yaml:"item"`
	Kind        string `yaml:"kind"`
	Ref         string `yaml:"ref"`
	Text        string `yaml:"text"`
}

type channelSpec struct {
	Established bool  `yaml:"established"`
	ID          uint8 `yaml:"id"`
	LinkDropped bool  `yaml:"link_dropped"`
}

type localInfoSpec struct {
	AccessTechnology uint8    `yaml:"access_technology"`
	DateTime         string   `yaml:"date_time"`
	IMEI             string   `yaml:"imei"`
	Language         string   `yaml:"language"`
	Location         hexBytes `yaml:"location"`
}

type resultSpec struct {
	Affirmative       bool           `yaml:"affirmative"`
	BufferSize        uint16         `yaml:"buffer_size"`
	Channel           *channelSpec   `yaml:"channel"`
	ChannelData       hexBytes       `yaml:"channel_data"`
	ChannelDataLength uint8          `yaml:"channel_data_length"`
	ChannelStatuses   []channelSpec  `yaml:"channel_statuses"`
	General           string         `yaml:"general"`
	LocalInfo         *localInfoSpec `yaml:"local_info"`
	Problem           *uint8         `yaml:"problem"`
	Ref               string         `yaml:"ref"`
	Text              string         `yaml:"text"`
	TextAlphabet      string         `yaml:"text_alphabet"`
}

type displaySpec struct {
	Displayed bool   `yaml:"displayed"`
	Ref       string `yaml:"ref"`
}

type eventSpec struct {
	BrowserCause string       `yaml:"browser_cause"`
	Channel      *channelSpec `yaml:"channel"`
	DataLength   uint8        `yaml:"data_length"`
	Language     string       `yaml:"language"`
	Source       string       `yaml:"source"`
	Type         string       `yaml:"type"`
}

type menuSpec struct {
	Help bool  `yaml:"help"`
	Item uint8 `yaml:"item"`
}

type hexBytes []byte

// UnmarshalYAML decodes a hex string, spaces allowed
func (h *hexBytes) UnmarshalYAML(value *yaml.Node) error {
	raw := strings.ReplaceAll(value.Value, " ", "")
	b, err := hex.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid hex %q: %w", value.Line, value.Value, err)
	}
	*h = b
	return nil
}

// Parse reads a scenario document from yaml bytes
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidScenario)
	}
	return &doc, nil
}

// Load reads a scenario document from a file
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}
