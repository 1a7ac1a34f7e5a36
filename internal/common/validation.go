package common

import (
	"strings"

	apperrors "ripple/pkg/errors"
)

const (
	maxDisplayNameLen = 100
	maxGroupNameLen   = 100
	maxMessageLen     = 10000
)

func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.InvalidArg("display name cannot be empty")
	}
	if len(name) > maxDisplayNameLen {
		return apperrors.InvalidArg("display name too long")
	}
	return nil
}

func ValidateGroupName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.InvalidArg("group name cannot be empty")
	}
	if len(name) > maxGroupNameLen {
		return apperrors.InvalidArg("group name too long")
	}
	return nil
}

func ValidateMessageBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return apperrors.InvalidArg("message content cannot be empty")
	}
	if len(body) > maxMessageLen {
		return apperrors.InvalidArg("message content too long")
	}
	return nil
}
