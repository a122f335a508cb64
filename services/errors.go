package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	ErrMatchNotFound      = errors.New("match not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrScoreEventNotFound = errors.New("score event not found")

	// Ошибки валидации
	ErrValidationFailed  = errors.New("validation failed")
	ErrInvalidEventType  = errors.New("invalid score event type")
	ErrInvalidOfficials  = errors.New("invalid officiating crew")
	ErrPublishingOffline = errors.New("standings publishing is not configured")

	// Ошибки аутентификации и авторизации
	ErrAuthInvalidCredentials  = errors.New("invalid email or password")
	ErrForbiddenOperation      = errors.New("operation not allowed for the current user")
	ErrNotMatchReferee         = errors.New("only the refereeing team can officiate this match")
	ErrStaffScorecardForbidden = errors.New("staff accounts cannot use the scorecard")
)
