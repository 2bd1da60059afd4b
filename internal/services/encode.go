package services

import (
	"fmt"
	"unicode/utf8"

	"satd/internal/domain"
	"satd/internal/ports"
)

// encoding is what an encoder decided for one command
type encoding struct {
	// reject is set when the command is answered at once and never queued
	reject *domain.Result
	notify func(h domain.NotificationHeader) domain.Notification
}

func proceed(notify func(h domain.NotificationHeader) domain.Notification) encoding {
	return encoding{notify: notify}
}

func rejectWith(general domain.GeneralResult) encoding {
	r := domain.ResultOf(general)
	return encoding{reject: &r}
}

func (s *ProactiveService) encode(cmd domain.ProactiveCommand) (encoding, error) {
	switch c := cmd.(type) {
	case domain.DisplayText:
		return s.encodeDisplayText(c)
	case domain.GetInkey:
		return s.encodeGetInkey(c)
	case domain.GetInput:
		return s.encodeGetInput(c)
	case domain.SelectItem:
		return s.encodeSelectItem(c)
	case domain.SetupMenu:
		return s.encodeSetupMenu(c)
	case domain.SetupIdleModeText:
		return s.encodeSetupIdleModeText(c)
	case domain.PlayTone:
		return s.encodePlayTone(c)
	case domain.SetupCall:
		return s.encodeSetupCall(c)
	case domain.SendSMS:
		return s.encodeSendSMS(c)
	case domain.SendSS:
		return s.encodeSendSS(c)
	case domain.SendUSSD:
		return s.encodeSendUSSD(c)
	case domain.SendDTMF:
		return s.encodeSendDTMF(c)
	case domain.LaunchBrowser:
		return s.encodeLaunchBrowser(c)
	case domain.SetupEventList:
		return s.encodeSetupEventList(c)
	case domain.ProvideLocalInfo:
		return s.encodeProvideLocalInfo(c)
	case domain.LanguageNotification:
		return s.encodeLanguageNotification(c)
	case domain.Refresh:
		return s.encodeRefresh(c)
	case domain.MoreTime:
		return s.encodeMoreTime(c)
	case domain.OpenChannel:
		return s.encodeOpenChannel(c)
	case domain.CloseChannel:
		return s.encodeCloseChannel(c)
	case domain.ReceiveData:
		return s.encodeReceiveData(c)
	case domain.SendData:
		return s.encodeSendData(c)
	case domain.GetChannelStatus:
		return s.encodeGetChannelStatus(c)
	default:
		return encoding{}, fmt.Errorf("%w: %T", domain.ErrUnsupportedCommand, cmd)
	}
}

// iconWithoutText reports an icon that cannot be shown because its text is missing
func iconWithoutText(icon domain.IconID, text domain.TextString) bool {
	return icon.RequiresText() && text.Empty()
}

// itemIconsWithoutText applies iconWithoutText to an item list and its icon list
func itemIconsWithoutText(items []domain.Item, icons []domain.IconID) bool {
	for i, icon := range icons {
		if i < len(items) && iconWithoutText(icon, items[i].Text) {
			return true
		}
	}
	return false
}

// textReader decodes card text, keeping the first error
type textReader struct {
	codec ports.TextCodec
	err   error
}

func (r *textReader) read(t domain.TextString) string {
	if r.err != nil || t.Empty() {
		return ""
	}
	s, err := r.codec.Decode(t.EffectiveAlphabet(), t.Data)
	if err != nil {
		r.err = fmt.Errorf("failed to decode text: %w", err)
		return ""
	}
	return s
}

func (r *textReader) items(items []domain.Item) []domain.MenuItem {
	out := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.MenuItem{ID: item.ID, Text: r.read(item.Text)})
	}
	return out
}

func (s *ProactiveService) reader() *textReader {
	return &textReader{codec: s.codec}
}

func millis(d *domain.Duration) int {
	if d == nil {
		return 0
	}
	return int(d.Value().Milliseconds())
}

func textLength(text string) int {
	return utf8.RuneCountInString(text)
}
