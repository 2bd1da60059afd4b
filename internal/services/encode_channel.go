package services

import (
	"satd/internal/domain"
)

func (s *ProactiveService) encodeOpenChannel(c domain.OpenChannel) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Alpha)
	if r.err != nil {
		return encoding{}, r.err
	}

	// Login and password stay in the stored command; they never reach the application
	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.OpenChannelNotification{
			NotificationHeader: h,
			BearerType:         c.Bearer.Type,
			BufferSize:         c.BufferSize,
			DestinationAddress: c.DestinationAddress,
			Icon:               c.Icon,
			NetworkAccessName:  c.NetworkAccessName,
			OnDemand:           c.OnDemand,
			Text:               text,
		}
	}), nil
}

func (s *ProactiveService) encodeCloseChannel(c domain.CloseChannel) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Alpha)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.CloseChannelNotification{
			NotificationHeader: h,
			ChannelID:          c.Devices.Destination.ChannelID(),
			Icon:               c.Icon,
			Text:               text,
		}
	}), nil
}

func (s *ProactiveService) encodeReceiveData(c domain.ReceiveData) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Alpha)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.ReceiveDataNotification{
			NotificationHeader: h,
			ChannelID:          c.Devices.Destination.ChannelID(),
			Icon:               c.Icon,
			Length:             c.Length,
			Text:               text,
		}
	}), nil
}

func (s *ProactiveService) encodeSendData(c domain.SendData) (encoding, error) {
	if iconWithoutText(c.Icon, c.Alpha) {
		return rejectWith(domain.ResultCommandDataNotUnderstood), nil
	}

	r := s.reader()
	text := r.read(c.Alpha)
	if r.err != nil {
		return encoding{}, r.err
	}

	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.SendDataNotification{
			NotificationHeader: h,
			ChannelID:          c.Devices.Destination.ChannelID(),
			Data:               c.Data,
			Icon:               c.Icon,
			Immediate:          c.Immediate,
			Text:               text,
		}
	}), nil
}

func (s *ProactiveService) encodeGetChannelStatus(domain.GetChannelStatus) (encoding, error) {
	return proceed(func(h domain.NotificationHeader) domain.Notification {
		return domain.GetChannelStatusNotification{NotificationHeader: h}
	}), nil
}
