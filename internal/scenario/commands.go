package scenario

import (
	"fmt"

	"satd/internal/domain"
)

// command builds the domain command named by spec.Kind
func (c *compiler) command(spec *commandSpec) (domain.ProactiveCommand, error) {
	kind, ok := domain.ParseCommandKind(spec.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedCommand, spec.Kind)
	}

	h, err := header(spec, kind)
	if err != nil {
		return nil, err
	}

	b := builder{compiler: c}
	alpha := b.text(spec.Alpha)
	text := b.text(spec.Text)
	dur := b.duration(spec.Duration)
	if b.err != nil {
		return nil, b.err
	}

	var cmd domain.ProactiveCommand
	switch kind {
	case domain.KindDisplayText:
		cmd = domain.DisplayText{
			CommandHeader:     h,
			Duration:          dur,
			HighPriority:      spec.HighPriority,
			Icon:              icon(spec.Icon),
			ImmediateResponse: spec.ImmediateResponse,
			Text:              text,
			WaitForUserClear:  spec.WaitForUserClear,
		}
	case domain.KindGetInkey:
		response, ok := inkeyResponses[spec.Response]
		if !ok {
			return nil, fmt.Errorf("unknown inkey response %q", spec.Response)
		}
		cmd = domain.GetInkey{
			CommandHeader: h,
			Duration:      dur,
			HelpAvailable: spec.HelpAvailable,
			Icon:          icon(spec.Icon),
			Response:      response,
			Text:          text,
		}
	case domain.KindGetInput:
		cmd = domain.GetInput{
			CommandHeader: h,
			DefaultText:   b.text(spec.DefaultText),
			DigitsOnly:    spec.DigitsOnly,
			HelpAvailable: spec.HelpAvailable,
			HideInput:     spec.HideInput,
			Icon:          icon(spec.Icon),
			MaxLength:     spec.MaxLength,
			MinLength:     spec.MinLength,
			Packed:        spec.Packed,
			Text:          text,
			UCS2:          spec.UCS2,
		}
	case domain.KindSelectItem:
		cmd = domain.SelectItem{
			CommandHeader:    h,
			Alpha:            alpha,
			DefaultItemID:    spec.DefaultItem,
			HelpAvailable:    spec.HelpAvailable,
			Icon:             icon(spec.Icon),
			ItemIcons:        itemIcons(spec.ItemIcons),
			Items:            b.items(spec.Items),
			Presentation:     spec.Presentation,
			SoftKeyPreferred: spec.SoftKeyPreferred,
		}
	case domain.KindSetupMenu:
		cmd = domain.SetupMenu{
			CommandHeader:    h,
			Alpha:            alpha,
			HelpAvailable:    spec.HelpAvailable,
			Icon:             icon(spec.Icon),
			ItemIcons:        itemIcons(spec.ItemIcons),
			Items:            b.items(spec.Items),
			SoftKeyPreferred: spec.SoftKeyPreferred,
		}
	case domain.KindSetupCall:
		cmd = domain.SetupCall{
			CommandHeader:    h,
			Address:          spec.Address,
			CallMode:         spec.CallMode,
			CapabilityConfig: spec.CapabilityConfig,
			ConfirmAlpha:     b.text(spec.ConfirmAlpha),
			ConfirmIcon:      icon(spec.ConfirmIcon),
			Redial:           b.duration(spec.Redial),
			SetupAlpha:       alpha,
			SetupIcon:        icon(spec.SetupIcon),
			SubAddress:       spec.SubAddress,
		}
	case domain.KindSetupEventList:
		events := make([]domain.EventType, 0, len(spec.Events))
		for _, name := range spec.Events {
			e, ok := domain.ParseEventType(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEventType, name)
			}
			events = append(events, e)
		}
		cmd = domain.SetupEventList{CommandHeader: h, Events: events}
	case domain.KindSetupIdleModeText:
		cmd = domain.SetupIdleModeText{CommandHeader: h, Icon: icon(spec.Icon), Text: text}
	case domain.KindPlayTone:
		cmd = domain.PlayTone{
			CommandHeader: h,
			Alpha:         alpha,
			Duration:      dur,
			Icon:          icon(spec.Icon),
			Tone:          spec.Tone,
			Vibrate:       spec.Vibrate,
		}
	case domain.KindSendSMS:
		cmd = domain.SendSMS{
			CommandHeader:   h,
			Address:         spec.Address,
			Alpha:           alpha,
			Icon:            icon(spec.Icon),
			PackingRequired: spec.PackingRequired,
			TPDU:            spec.TPDU,
		}
	case domain.KindSendSS:
		cmd = domain.SendSS{CommandHeader: h, Alpha: alpha, Icon: icon(spec.Icon), SSString: spec.SSString}
	case domain.KindSendUSSD:
		cmd = domain.SendUSSD{CommandHeader: h, Alpha: alpha, Icon: icon(spec.Icon), USSD: text}
	case domain.KindSendDTMF:
		cmd = domain.SendDTMF{CommandHeader: h, Alpha: alpha, DTMF: spec.DTMF, Icon: icon(spec.Icon)}
	case domain.KindLaunchBrowser:
		cmd = domain.LaunchBrowser{
			CommandHeader: h,
			Alpha:         alpha,
			Bearers:       spec.Bearers,
			BrowserID:     spec.BrowserID,
			Gateway:       b.text(spec.Gateway),
			Icon:          icon(spec.Icon),
			Mode:          domain.BrowserMode(spec.Mode),
			URL:           spec.URL,
		}
	case domain.KindProvideLocalInfo:
		cmd = domain.ProvideLocalInfo{CommandHeader: h, Info: domain.LocalInfoType(spec.Info)}
	case domain.KindLanguageNotification:
		n := domain.LanguageNotification{CommandHeader: h, Language: domain.LanguageUnspecified, Specific: spec.Specific}
		if spec.Language != "" {
			code, err := domain.LanguageFromLocale(spec.Language)
			if err != nil {
				return nil, err
			}
			n.Language = code
		}
		cmd = n
	case domain.KindOpenChannel:
		oc := domain.OpenChannel{
			CommandHeader:      h,
			Alpha:              alpha,
			BufferSize:         spec.BufferSize,
			DestinationAddress: spec.DestinationAddress,
			Icon:               icon(spec.Icon),
			Login:              b.text(spec.Login),
			NetworkAccessName:  spec.NetworkAccessName,
			OnDemand:           spec.OnDemand,
			Password:           b.text(spec.Password),
		}
		if spec.Bearer != nil {
			oc.Bearer = domain.BearerDescription{Parameters: spec.Bearer.Parameters, Type: spec.Bearer.Type}
		}
		if spec.Transport != nil {
			oc.Transport = domain.TransportLevel{Port: spec.Transport.Port, Protocol: spec.Transport.Protocol}
		}
		cmd = oc
	case domain.KindCloseChannel:
		cmd = domain.CloseChannel{CommandHeader: h, Alpha: alpha, Icon: icon(spec.Icon)}
	case domain.KindReceiveData:
		cmd = domain.ReceiveData{CommandHeader: h, Alpha: alpha, Icon: icon(spec.Icon), Length: spec.Length}
	case domain.KindSendData:
		cmd = domain.SendData{
			CommandHeader: h,
			Alpha:         alpha,
			Data:          spec.Data,
			Icon:          icon(spec.Icon),
			Immediate:     spec.Immediate,
		}
	case domain.KindGetChannelStatus:
		cmd = domain.GetChannelStatus{CommandHeader: h}
	case domain.KindRefresh:
		cmd = domain.Refresh{
			CommandHeader: h,
			AID:           spec.AID,
			Alpha:         alpha,
			Files:         spec.Files,
			Icon:          icon(spec.Icon),
			Mode:          domain.RefreshMode(spec.Mode),
		}
	case domain.KindMoreTime:
		cmd = domain.MoreTime{CommandHeader: h}
	}

	if b.err != nil {
		return nil, b.err
	}
	return cmd, nil
}

// builder keeps the first conversion error so struct literals stay flat
type builder struct {
	*compiler
	err error
}

func (b *builder) text(spec *textSpec) domain.TextString {
	if b.err != nil {
		return domain.TextString{}
	}
	t, err := b.compiler.text(spec)
	b.err = err
	return t
}

func (b *builder) duration(spec *durationSpec) *domain.Duration {
	if b.err != nil {
		return nil
	}
	d, err := duration(spec)
	b.err = err
	return d
}

func (b *builder) items(specs []itemSpec) []domain.Item {
	if b.err != nil {
		return nil
	}
	items, err := b.compiler.items(specs)
	b.err = err
	return items
}
