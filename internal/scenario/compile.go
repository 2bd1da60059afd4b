package scenario

import (
	"fmt"
	"strings"
	"time"

	"satd/internal/domain"
	"satd/internal/ports"
)

var expectedErrors = map[string]error{
	"command_not_found":        domain.ErrCommandNotFound,
	"menu_item_not_found":      domain.ErrMenuItemNotFound,
	"queue_full":               domain.ErrQueueFull,
	"unknown_event_type":       domain.ErrUnknownEventType,
	"unknown_language":         domain.ErrUnknownLanguage,
	"unsupported_command":      domain.ErrUnsupportedCommand,
	"unsupported_confirmation": domain.ErrUnsupportedConfirmation,
}

var devices = map[string]domain.Device{
	"keypad":   domain.DeviceKeypad,
	"display":  domain.DeviceDisplay,
	"earpiece": domain.DeviceEarpiece,
	"uicc":     domain.DeviceUICC,
	"me":       domain.DeviceME,
	"network":  domain.DeviceNetwork,
	"channel1": domain.DeviceChannel1,
	"channel2": domain.DeviceChannel1 + 1,
	"channel3": domain.DeviceChannel1 + 2,
	"channel4": domain.DeviceChannel1 + 3,
	"channel5": domain.DeviceChannel1 + 4,
	"channel6": domain.DeviceChannel1 + 5,
	"channel7": domain.DeviceChannel7,
}

var alphabets = map[string]domain.Alphabet{
	"":            domain.Alphabet8BitData,
	"8bit_data":   domain.Alphabet8BitData,
	"gsm7_packed": domain.AlphabetGSM7Packed,
	"ucs2":        domain.AlphabetUCS2,
	"unspecified": domain.AlphabetUnspecified,
}

var inkeyResponses = map[string]domain.InkeyResponse{
	"":             domain.InkeyDigits,
	"digits":       domain.InkeyDigits,
	"sms_alphabet": domain.InkeySMSAlphabet,
	"ucs2":         domain.InkeyUCS2,
	"yes_no":       domain.InkeyYesNo,
}

// Compile turns a parsed document into runnable steps.
// Text is encoded to card bytes with codec.
func Compile(doc *Document, codec ports.TextCodec) (*Scenario, error) {
	c := compiler{codec: codec, labels: map[string]bool{}}
	sc := &Scenario{Name: doc.Name}

	for i := range doc.Steps {
		step, err := c.step(&doc.Steps[i])
		if err != nil {
			return nil, fmt.Errorf("%w: step %d (line %d): %w", ErrInvalidScenario, i+1, doc.Steps[i].line, err)
		}
		sc.Steps = append(sc.Steps, step)
	}

	return sc, nil
}

type compiler struct {
	codec  ports.TextCodec
	labels map[string]bool
}

func (c *compiler) step(spec *stepSpec) (Step, error) {
	step := Step{Line: spec.line, Label: spec.Label}

	actions := 0
	for _, set := range []bool{
		spec.Command != nil, spec.Confirm != nil, spec.Result != nil, spec.Display != nil,
		spec.Event != nil, spec.Menu != nil, spec.Language != nil, spec.EndSession,
	} {
		if set {
			actions++
		}
	}
	if actions != 1 {
		return step, fmt.Errorf("expected exactly one action, got %d", actions)
	}

	if err := c.expectation(spec.Expect, &step.Expect); err != nil {
		return step, err
	}

	var err error
	switch {
	case spec.Command != nil:
		step.Kind = StepCommand
		step.Command, err = c.command(spec.Command)
		if err == nil && spec.Label != "" {
			c.labels[spec.Label] = true
		}
	case spec.Confirm != nil:
		step.Kind = StepConfirm
		step.Ref = spec.Confirm.Ref
		step.Confirmation, err = confirmation(spec.Confirm)
	case spec.Result != nil:
		step.Kind = StepResult
		step.Ref = spec.Result.Ref
		step.Result, err = executionResult(spec.Result)
	case spec.Display != nil:
		step.Kind = StepDisplay
		step.Ref = spec.Display.Ref
		step.Displayed = spec.Display.Displayed
	case spec.Event != nil:
		step.Kind = StepEvent
		step.Event, err = runtimeEvent(spec.Event)
	case spec.Menu != nil:
		step.Kind = StepMenu
		step.MenuItem = spec.Menu.Item
		step.Help = spec.Menu.Help
	case spec.Language != nil:
		step.Kind = StepLanguage
		step.Ref = spec.Language.Ref
	default:
		step.Kind = StepEndSession
	}
	if err != nil {
		return step, err
	}

	if step.Label != "" && step.Kind != StepCommand {
		return step, fmt.Errorf("only command steps take a label")
	}
	switch step.Kind {
	case StepConfirm, StepResult, StepDisplay, StepLanguage:
		if !c.labels[step.Ref] {
			return step, fmt.Errorf("%w: %q", ErrUnknownRef, step.Ref)
		}
	}

	return step, nil
}

func (c *compiler) expectation(spec *expectSpec, out *Expectation) error {
	if spec == nil {
		return nil
	}
	if spec.Error != "" {
		err, ok := expectedErrors[spec.Error]
		if !ok {
			return fmt.Errorf("unknown expected error %q", spec.Error)
		}
		out.Error = err
	}
	if spec.Result != "" {
		general, ok := domain.ParseGeneralResult(spec.Result)
		if !ok {
			return fmt.Errorf("unknown expected result %q", spec.Result)
		}
		out.Result = &general
	}
	out.Sent = spec.Sent
	return nil
}

func (c *compiler) text(spec *textSpec) (domain.TextString, error) {
	if spec == nil {
		return domain.TextString{}, nil
	}
	alphabet, ok := alphabets[spec.Alphabet]
	if !ok {
		return domain.TextString{}, fmt.Errorf("unknown alphabet %q", spec.Alphabet)
	}
	if spec.Hex != nil {
		return domain.TextString{Alphabet: alphabet, Data: spec.Hex}, nil
	}
	data, err := c.codec.Encode(alphabet, spec.Value)
	if err != nil {
		return domain.TextString{}, fmt.Errorf("failed to encode text %q: %w", spec.Value, err)
	}
	return domain.TextString{Alphabet: alphabet, Data: data}, nil
}

func icon(spec *iconSpec) domain.IconID {
	if spec == nil {
		return domain.IconID{}
	}
	coding := domain.IconCodingBasic
	if spec.Colour {
		coding = domain.IconCodingColour
	}
	return domain.IconID{
		Coding:          coding,
		Identifier:      spec.ID,
		Present:         true,
		SelfExplanatory: spec.SelfExplanatory,
	}
}

func duration(spec *durationSpec) (*domain.Duration, error) {
	if spec == nil {
		return nil, nil
	}
	var unit domain.TimeUnit
	switch spec.Unit {
	case "minutes":
		unit = domain.UnitMinutes
	case "", "seconds":
		unit = domain.UnitSeconds
	case "tenths":
		unit = domain.UnitTenths
	default:
		return nil, fmt.Errorf("unknown time unit %q", spec.Unit)
	}
	return &domain.Duration{Interval: spec.Interval, Unit: unit}, nil
}

func (c *compiler) items(specs []itemSpec) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(specs))
	for _, s := range specs {
		text, err := c.text(&s.Text)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.Item{ID: s.ID, Text: text})
	}
	return items, nil
}

func itemIcons(specs []iconSpec) []domain.IconID {
	var out []domain.IconID
	for i := range specs {
		out = append(out, icon(&specs[i]))
	}
	return out
}

func header(spec *commandSpec, kind domain.CommandKind) (domain.CommandHeader, error) {
	dest := domain.DeviceME
	if spec.Destination != "" {
		d, ok := devices[spec.Destination]
		if !ok {
			return domain.CommandHeader{}, fmt.Errorf("unknown device %q", spec.Destination)
		}
		dest = d
	} else {
		switch kind {
		case domain.KindDisplayText:
			dest = domain.DeviceDisplay
		case domain.KindPlayTone:
			dest = domain.DeviceEarpiece
		case domain.KindSetupCall, domain.KindSendSMS, domain.KindSendSS, domain.KindSendUSSD:
			dest = domain.DeviceNetwork
		}
	}

	number := spec.Number
	if number == 0 {
		number = 1
	}

	return domain.CommandHeader{
		Details: domain.CommandDetails{Kind: kind, Number: number, Qualifier: spec.Qualifier},
		Devices: domain.DeviceIdentities{Source: domain.DeviceUICC, Destination: dest},
	}, nil
}

func channelStatus(spec *channelSpec) domain.ChannelStatus {
	if spec == nil {
		return domain.ChannelStatus{}
	}
	return domain.ChannelStatus{ChannelID: spec.ID, Established: spec.Established, LinkDropped: spec.LinkDropped}
}

func confirmation(spec *confirmSpec) (domain.Confirmation, error) {
	kind, ok := domain.ParseConfirmationKind(spec.Kind)
	if !ok {
		return domain.Confirmation{}, fmt.Errorf("unknown confirmation kind %q", spec.Kind)
	}
	return domain.Confirmation{
		Affirmative: spec.Affirmative,
		ItemID:      spec.Item,
		Kind:        kind,
		Text:        spec.Text,
	}, nil
}

func executionResult(spec *resultSpec) (domain.ExecutionResult, error) {
	general := domain.ResultSuccess
	if spec.General != "" {
		g, ok := domain.ParseGeneralResult(spec.General)
		if !ok {
			return domain.ExecutionResult{}, fmt.Errorf("unknown general result %q", spec.General)
		}
		general = g
	}

	alphabet, ok := alphabets[spec.TextAlphabet]
	if !ok {
		return domain.ExecutionResult{}, fmt.Errorf("unknown alphabet %q", spec.TextAlphabet)
	}
	if spec.TextAlphabet == "" {
		alphabet = domain.AlphabetUnspecified
	}

	result := domain.ExecutionResult{
		Affirmative:       spec.Affirmative,
		BufferSize:        spec.BufferSize,
		Channel:           channelStatus(spec.Channel),
		ChannelData:       spec.ChannelData,
		ChannelDataLength: spec.ChannelDataLength,
		General:           general,
		Text:              spec.Text,
		TextAlphabet:      alphabet,
	}

	if spec.Problem != nil {
		problem, err := domain.ProblemFromCode(general.ProblemDomain(), *spec.Problem)
		if err != nil {
			return domain.ExecutionResult{}, err
		}
		result.Problem = problem
	}

	for i := range spec.ChannelStatuses {
		result.ChannelStatuses = append(result.ChannelStatuses, channelStatus(&spec.ChannelStatuses[i]))
	}

	if spec.LocalInfo != nil {
		info := &domain.LocalInfo{
			AccessTechnology: spec.LocalInfo.AccessTechnology,
			IMEI:             spec.LocalInfo.IMEI,
			Language:         spec.LocalInfo.Language,
			Location:         spec.LocalInfo.Location,
		}
		if spec.LocalInfo.DateTime != "" {
			t, err := time.Parse(time.RFC3339, spec.LocalInfo.DateTime)
			if err != nil {
				return domain.ExecutionResult{}, fmt.Errorf("invalid date_time: %w", err)
			}
			info.DateTime = t
		}
		result.LocalInfo = info
	}

	return result, nil
}

func runtimeEvent(spec *eventSpec) (domain.RuntimeEvent, error) {
	eventType, ok := domain.ParseEventType(spec.Type)
	if !ok {
		return domain.RuntimeEvent{}, fmt.Errorf("%w: %q", domain.ErrUnknownEventType, spec.Type)
	}

	source := domain.DeviceME
	if spec.Source != "" {
		d, ok := devices[spec.Source]
		if !ok {
			return domain.RuntimeEvent{}, fmt.Errorf("unknown device %q", spec.Source)
		}
		source = d
	}

	event := domain.RuntimeEvent{
		Channel:    channelStatus(spec.Channel),
		DataLength: spec.DataLength,
		Devices:    domain.DeviceIdentities{Source: source, Destination: domain.DeviceUICC},
		Language:   spec.Language,
		Type:       eventType,
	}

	switch strings.ToLower(spec.BrowserCause) {
	case "", "user":
		event.BrowserCause = domain.BrowserTerminatedByUser
	case "error":
		event.BrowserCause = domain.BrowserTerminatedByError
	default:
		return domain.RuntimeEvent{}, fmt.Errorf("unknown browser cause %q", spec.BrowserCause)
	}

	return event, nil
}
