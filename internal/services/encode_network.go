package services

import (
	"satd/internal/domain"
)

func (s *ProactiveService) encodeSetupCall(c domain.SetupCall) (encoding, error) {
	if iconWithoutText(c.ConfirmIcon, c.ConfirmAlpha) || iconWithoutText(c.SetupIcon, c.SetupAlpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	// Redial and subaddress are not supported
	if (c.Redial != nil && c.Redial.Interval != 0) || len(c.SubAddress) > 0 {
		return rejectWith(domain.ResultBeyondMECapabilities), nil
	}

	r := s.reader()
	confirmText := r.read(c.ConfirmAlpha)
	callText := r.read(c.SetupAlpha)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.SetupCallNotification{
			NotificationHeader: h,
			Address:            c.Address,
			CallMode:           c.CallMode,
			CallText:           callText,
			ConfirmText:        confirmText,
			Icon:               c.ConfirmIcon,
		}
	}), nil
}

func (s *ProactiveService) encodeSendSMS(c domain.SendSMS) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Alpha)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.SendSMSNotification{
			NotificationHeader: h,
			Address:            c.Address,
			Icon:               c.Icon,
			PackingRequired:    c.PackingRequired,
			Text:               text,
			TPDU:               c.TPDU,
		}
	}), nil
}

func (s *ProactiveService) encodeSendSS(c domain.SendSS) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Alpha)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.SendSSNotification{
			NotificationHeader: h,
			Icon:               c.Icon,
			SSString:           c.SSString,
			Text:               text,
		}
	}), nil
}

func (s *ProactiveService) encodeSendUSSD(c domain.SendUSSD) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Alpha)
	ussd := r.read(c.USSD)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.SendUSSDNotification{
			NotificationHeader: h,
			Icon:               c.Icon,
			Text:               text,
			USSD:               ussd,
		}
	}), nil
}

func (s *ProactiveService) encodeSendDTMF(c domain.SendDTMF) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Alpha)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.SendDTMFNotification{
			NotificationHeader: h,
			DTMF:               c.DTMF,
			Icon:               c.Icon,
			Text:               text,
		}
	}), nil
}

func (s *ProactiveService) encodeLaunchBrowser(c domain.LaunchBrowser) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Alpha)
	gateway := r.read(c.Gateway)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.LaunchBrowserNotification{
			NotificationHeader: h,
			Gateway:            gateway,
			Icon:               c.Icon,
			Mode:               c.Mode,
			Text:               text,
			URL:                c.URL,
		}
	}), nil
}

func (s *ProactiveService) encodeSetupEventList(c domain.SetupEventList) (encoding, error) {
	events := append([]domain.EventType(nil), c.Events...)
	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.SetupEventListNotification{NotificationHeader: h, Events: events}
	}), nil
}

func (s *ProactiveService) encodeProvideLocalInfo(c domain.ProvideLocalInfo) (encoding, error) {
	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.ProvideLocalInfoNotification{NotificationHeader: h, Info: c.Info}
	}), nil
}

func (s *ProactiveService) encodeLanguageNotification(c domain.LanguageNotification) (encoding, error) {
	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.LanguageChangeNotification{
			NotificationHeader: h,
			Language:           c.Language,
			Specific:           c.Specific,
		}
	}), nil
}

func (s *ProactiveService) encodeRefresh(c domain.Refresh) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Alpha)
	if r.err != nil {
		return encoding{}, r.err
	}

	files := append([]string(nil), c.Files...)
	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.RefreshNotification{
			NotificationHeader: h,
			Files:              files,
			Icon:               c.Icon,
			Mode:               c.Mode,
			Text:               text,
		}
	}), nil
}

func (s *ProactiveService) encodeMoreTime(domain.MoreTime) (encoding, error) {
	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.MoreTimeNotification{NotificationHeader: h}
	}), nil
}
