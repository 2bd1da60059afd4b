package services

import (
	"satd/internal/domain"
)

const (
	// waitForClearMillis is shown for a display text the user must clear
	waitForClearMillis = 30000
	// clearAfterDelayMillis is shown for a display text cleared automatically
	clearAfterDelayMillis = 15000
)

func (s *ProactiveService) encodeDisplayText(c domain.DisplayText) (encoding, error) {
	if iconWithoutText(c.Icon, c.Text) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Text)
	if r.err != nil {
		return encoding{}, r.err
	}

	duration := millis(c.Duration)
	if c.Duration == nil {
		duration = clearAfterDelayMillis
		if c.WaitForUserClear {
			duration = waitForClearMillis
		}
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.DisplayTextNotification{
			NotificationHeader:   h,
			Duration:             duration,
			HighPriority:         c.HighPriority,
			Icon:                 c.Icon,
			ImmediateResponse:    c.ImmediateResponse,
			Text:                 text,
			TextLength:           textLength(text),
			UserResponseRequired: c.WaitForUserClear,
		}
	}), nil
}

func (s *ProactiveService) encodeGetInkey(c domain.GetInkey) (encoding, error) {
	if iconWithoutText(c.Icon, c.Text) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Text)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.GetInkeyNotification{
			NotificationHeader: h,
			Duration:           millis(c.Duration),
			HelpAvailable:      c.HelpAvailable,
			Icon:               c.Icon,
			Response:           c.Response,
			Text:               text,
			TextLength:         textLength(text),
		}
	}), nil
}

func (s *ProactiveService) encodeGetInput(c domain.GetInput) (encoding, error) {
	if iconWithoutText(c.Icon, c.Text) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Text)
	defaultText := r.read(c.DefaultText)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.GetInputNotification{
			NotificationHeader: h,
			DefaultText:        defaultText,
			DigitsOnly:         c.DigitsOnly,
			HelpAvailable:      c.HelpAvailable,
			HideInput:          c.HideInput,
			Icon:               c.Icon,
			MaxLength:          int(c.MaxLength),
			MinLength:          int(c.MinLength),
			Text:               text,
			TextLength:         textLength(text),
			UCS2:               c.UCS2,
		}
	}), nil
}

func (s *ProactiveService) encodeSelectItem(c domain.SelectItem) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) || itemIconsWithoutText(c.Items, c.ItemIcons) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	title := r.read(c.Alpha)
	items := r.items(c.Items)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.SelectItemNotification{
			NotificationHeader: h,
			DefaultItemID:      c.DefaultItemID,
			HelpAvailable:      c.HelpAvailable,
			Icon:               c.Icon,
			Items:              items,
			Title:              title,
		}
	}), nil
}

func (s *ProactiveService) encodeSetupMenu(c domain.SetupMenu) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) || itemIconsWithoutText(c.Items, c.ItemIcons) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	// An empty menu removes the current one
	if c.RemovesMenu() {
		s.menu = nil
		return rejectWith(domain.ResultSuccess), nil
	}

	r := s.reader()
	title := r.read(c.Alpha)
	items := r.items(c.Items)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.SetupMenuNotification{
			NotificationHeader: h,
			HelpAvailable:      c.HelpAvailable,
			Icon:               c.Icon,
			Items:              items,
			Title:              title,
		}
	}), nil
}

func (s *ProactiveService) encodeSetupIdleModeText(c domain.SetupIdleModeText) (encoding, error) {
	if iconWithoutText(c.Icon, c.Text) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Text)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.SetupIdleModeTextNotification{
			NotificationHeader: h,
			Icon:               c.Icon,
			Text:               text,
		}
	}), nil
}

func (s *ProactiveService) encodePlayTone(c domain.PlayTone) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Alpha)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.PlayToneNotification{
			NotificationHeader: h,
			Duration:           millis(c.Duration),
			Icon:               c.Icon,
			Text:               text,
			Tone:               c.Tone,
			Vibrate:            c.Vibrate,
		}
	}), nil
}
