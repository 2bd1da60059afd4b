package services

import (
	"context"
	"fmt"

	"satd/internal/domain"
	"satd/internal/logging"
)

// LanguageSettingKey is the settings key holding the card's language locale
const LanguageSettingKey = "language"

// SyncLanguage finalizes a language notification by persisting its locale.
// The response is a success only when the language is known and was saved.
// A non-specific notification is acknowledged without touching the setting.
func (s *ProactiveService) SyncLanguage(ctx context.Context, id int) (*domain.TerminalResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.queue.Peek(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load command: %w", err)
	}
	cmd, ok := entry.Command.(domain.LanguageNotification)
	if !ok {
		return nil, fmt.Errorf("%w: command %d is %s", domain.ErrUnsupportedCommand, id, entry.Kind)
	}

	result := domain.ExecutionResult{General: domain.ResultSuccess}
	if cmd.Specific {
		if err := s.persistLanguage(ctx, cmd.Language); err != nil {
			logging.Logger.Warn("Failed to sync language", "command_id", id, "error", err)
			result.General = domain.ResultMEUnableToProcess
		}
	}

	return s.finalizeAndSend(ctx, id, result)
}

func (s *ProactiveService) persistLanguage(ctx context.Context, code domain.LanguageCode) error {
	locale, err := code.Locale()
	if err != nil {
		return err
	}

	if err := s.settings.SetSetting(ctx, LanguageSettingKey, locale); err != nil {
		return fmt.Errorf("failed to persist language: %w", err)
	}

	logging.Logger.Info("Language synced", "locale", locale)
	return nil
}

// CurrentLanguage returns the persisted locale
func (s *ProactiveService) CurrentLanguage(ctx context.Context) (string, error) {
	locale, err := s.settings.GetSetting(ctx, LanguageSettingKey)
	if err != nil {
		return "", fmt.Errorf("failed to read language: %w", err)
	}
	return locale, nil
}

// SetLanguage persists a locale chosen outside a card session.
// The locale must be one of the known language locales.
func (s *ProactiveService) SetLanguage(ctx context.Context, locale string) error {
	code, err := domain.LanguageFromLocale(locale)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLanguage(ctx, code)
}
