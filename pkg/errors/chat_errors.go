package errors

// Domain errors — used in the service and repository layers. Each carries the
// entity id so callers can render a useful message.

func ErrDuplicateRelationship(userA, userB string) error {
	return Newf(CodeDuplicateRelationship, "a friendship record already exists between users %s and %s", userA, userB)
}

func ErrFriendshipNotFound(friendshipID uint64) error {
	return Newf(CodeNotFound, "friendship %d not found", friendshipID)
}

func ErrFriendshipNotPending(friendshipID uint64, status string) error {
	return Newf(CodeInvalidState, "friendship %d is %q, expected pending", friendshipID, status)
}

func ErrUserNotFound(externalID string) error {
	return Newf(CodeNotFound, "no user for external id %s", externalID)
}

func ErrConversationNotFound(conversationID string) error {
	return Newf(CodeNotFound, "conversation %s not found", conversationID)
}

func ErrAlreadyMember(conversationID, userID string) error {
	return Newf(CodeAlreadyMember, "user %s is already a member of conversation %s", userID, conversationID)
}

func ErrNotAMember(conversationID, userID string) error {
	return Newf(CodeNotAMember, "user %s is not a member of conversation %s", userID, conversationID)
}

func ErrDirectConversationImmutable(conversationID string) error {
	return Newf(CodeInvalidState, "conversation %s is a direct message, its member set is fixed", conversationID)
}

func ErrMessageNotFound(messageID uint64) error {
	return Newf(CodeNotFound, "message %d not found", messageID)
}

func ErrNotMessageSender(messageID uint64, userID string) error {
	return Newf(CodePermissionDenied, "user %s is not the sender of message %d", userID, messageID)
}
