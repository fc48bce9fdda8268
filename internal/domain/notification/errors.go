package notification

import "errors"

var (
	ErrUnknownChannel  = errors.New("unknown notification channel")
	ErrMissingQueueURL = errors.New("sqs channel requires a queue url")
	ErrMissingStore    = errors.New("store channel requires a repository")

	ErrNotificationNotFound = errors.New("notification not found")
)
