package domain

import "errors"

var (
	ErrCommandNotFound         = errors.New("proactive command not found")
	ErrMenuItemNotFound        = errors.New("menu item not found")
	ErrProblemMismatch         = errors.New("problem code does not match general result")
	ErrQueueFull               = errors.New("proactive command queue is full")
	ErrSettingNotFound         = errors.New("setting not found")
	ErrUnknownEventType        = errors.New("unknown event type")
	ErrUnknownLanguage         = errors.New("unknown language")
	ErrUnsupportedCommand      = errors.New("unsupported proactive command")
	ErrUnsupportedConfirmation = errors.New("command kind does not accept user confirmation")
)
