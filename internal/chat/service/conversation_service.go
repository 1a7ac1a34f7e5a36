package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"ripple/internal/chat/repository"
	"ripple/internal/common"
	"ripple/internal/dbmysql"
	"ripple/internal/notif"
	"ripple/internal/user"
	apperrors "ripple/pkg/errors"
)

// unknownUserName stands in for a DM partner whose record is gone.
const unknownUserName = "Unknown User"

// ConversationSummary is one row of a user's conversation list: the
// conversation, its resolved members and the display name derived for the
// viewing user.
type ConversationSummary struct {
	Conversation *dbmysql.Conversation `json:"conversation"`
	DisplayName  string                `json:"display_name"`
	Members      []*dbmysql.User       `json:"members"`
}

type ConversationDetail struct {
	Conversation *dbmysql.Conversation `json:"conversation"`
	Members      []*dbmysql.User       `json:"members"`
}

// ConversationService is the conversation registry: it creates and
// deduplicates direct conversations, creates groups and manages membership.
type ConversationService interface {
	CreateGroup(ctx context.Context, name, creatorID string, memberIDs []string, imageFileID *string) (*dbmysql.Conversation, error)
	CreateOrGetDirectMessage(ctx context.Context, userA, userB string) (*dbmysql.Conversation, error)
	ListUserConversations(ctx context.Context, userID string) ([]*ConversationSummary, error)
	GetConversation(ctx context.Context, conversationID string) (*ConversationDetail, error)
	AddMember(ctx context.Context, conversationID, userID string) error
	RemoveMember(ctx context.Context, conversationID, userID string) error
}

type conversationService struct {
	repo     repository.ConversationRepository
	userRepo user.UserRepository
	events   notif.Publisher
}

func NewConversationService(repo repository.ConversationRepository, userRepo user.UserRepository, events notif.Publisher) ConversationService {
	return &conversationService{repo: repo, userRepo: userRepo, events: events}
}

// CreateGroup creates a named conversation whose member set is the union of
// the creator and memberIDs; the creator is always included and duplicates
// collapse.
func (s *conversationService) CreateGroup(ctx context.Context, name, creatorID string, memberIDs []string, imageFileID *string) (*dbmysql.Conversation, error) {
	if err := common.ValidateGroupName(name); err != nil {
		return nil, err
	}

	members := uniqueUnion(creatorID, memberIDs)

	// New conversations sort by creation time until a message arrives, so the
	// marker must land in the stored row, not just the returned struct.
	now := time.Now().UTC()
	conversation := &dbmysql.Conversation{
		Name:            name,
		IsDirectMessage: false,
		CreatedBy:       creatorID,
		ImageFileID:     imageFileID,
		CreatedAt:       now,
		LastMessageAt:   now,
	}
	if err := s.repo.CreateWithMembers(ctx, conversation, members); err != nil {
		return nil, apperrors.Internal("creating group conversation", err)
	}

	for _, memberID := range members {
		s.events.Publish(notif.Event{
			Type:           notif.ConversationCreated,
			UserID:         memberID,
			ActorID:        creatorID,
			ConversationID: conversation.ConversationID,
		})
	}
	return conversation, nil
}

// CreateOrGetDirectMessage is idempotent: if a direct conversation whose
// two-member set equals {userA, userB} already exists it is returned,
// whatever the argument order. The scan and the insert are separate store
// operations, so two concurrent calls for a fresh pair can both miss the scan
// and create twins; no constraint spans the member sets to prevent it.
func (s *conversationService) CreateOrGetDirectMessage(ctx context.Context, userA, userB string) (*dbmysql.Conversation, error) {
	if userA == userB {
		return nil, apperrors.InvalidArg("a direct conversation needs two distinct users")
	}

	existing, err := s.repo.FindDirectConversation(ctx, userA, userB)
	if err != nil {
		return nil, apperrors.Internal("scanning direct conversations", err)
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now().UTC()
	conversation := &dbmysql.Conversation{
		Name:            "Direct Message",
		IsDirectMessage: true,
		CreatedBy:       userA,
		CreatedAt:       now,
		LastMessageAt:   now,
	}
	if err := s.repo.CreateWithMembers(ctx, conversation, []string{userA, userB}); err != nil {
		return nil, apperrors.Internal("creating direct conversation", err)
	}

	for _, memberID := range []string{userA, userB} {
		s.events.Publish(notif.Event{
			Type:           notif.ConversationCreated,
			UserID:         memberID,
			ActorID:        userA,
			ConversationID: conversation.ConversationID,
		})
	}
	return conversation, nil
}

// ListUserConversations returns every conversation the user belongs to,
// members resolved and display name derived, most recently active first.
func (s *conversationService) ListUserConversations(ctx context.Context, userID string) ([]*ConversationSummary, error) {
	conversations, err := s.repo.ListConversationsForUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("listing conversations", err)
	}

	summaries := make([]*ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		members, err := s.resolveMembers(ctx, conversation.ConversationID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &ConversationSummary{
			Conversation: conversation,
			DisplayName:  deriveDisplayName(conversation, members, userID),
			Members:      members,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Conversation.LastActivityAt().After(summaries[j].Conversation.LastActivityAt())
	})
	return summaries, nil
}

func (s *conversationService) GetConversation(ctx context.Context, conversationID string) (*ConversationDetail, error) {
	conversation, err := s.getConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	members, err := s.resolveMembers(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return &ConversationDetail{Conversation: conversation, Members: members}, nil
}

// AddMember inserts a membership. Direct conversations keep exactly two
// members for their entire lifetime, so their member set cannot be touched.
func (s *conversationService) AddMember(ctx context.Context, conversationID, userID string) error {
	conversation, err := s.getConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if conversation.IsDirectMessage {
		return apperrors.ErrDirectConversationImmutable(conversationID)
	}

	_, err = s.repo.GetMembership(ctx, conversationID, userID)
	switch {
	case err == nil:
		return apperrors.ErrAlreadyMember(conversationID, userID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.Internal("checking membership", err)
	}

	membership := &dbmysql.Membership{ConversationID: conversationID, UserID: userID}
	if err := s.repo.AddMembership(ctx, membership); err != nil {
		return apperrors.Internal("adding member", err)
	}

	s.events.Publish(notif.Event{
		Type:           notif.ConversationUpdated,
		UserID:         userID,
		ConversationID: conversationID,
	})
	return nil
}

func (s *conversationService) RemoveMember(ctx context.Context, conversationID, userID string) error {
	conversation, err := s.getConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if conversation.IsDirectMessage {
		return apperrors.ErrDirectConversationImmutable(conversationID)
	}

	if _, err := s.repo.GetMembership(ctx, conversationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotAMember(conversationID, userID)
		}
		return apperrors.Internal("checking membership", err)
	}

	if err := s.repo.DeleteMembership(ctx, conversationID, userID); err != nil {
		return apperrors.Internal("removing member", err)
	}

	s.events.Publish(notif.Event{
		Type:           notif.ConversationUpdated,
		UserID:         userID,
		ConversationID: conversationID,
	})
	return nil
}

func (s *conversationService) getConversation(ctx context.Context, conversationID string) (*dbmysql.Conversation, error) {
	conversation, err := s.repo.GetConversation(ctx, conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrConversationNotFound(conversationID)
	}
	if err != nil {
		return nil, apperrors.Internal("looking up conversation", err)
	}
	return conversation, nil
}

// resolveMembers turns membership rows into user records, dropping members
// whose user record is gone.
func (s *conversationService) resolveMembers(ctx context.Context, conversationID string) ([]*dbmysql.User, error) {
	memberships, err := s.repo.ListMembers(ctx, conversationID)
	if err != nil {
		return nil, apperrors.Internal("listing members", err)
	}

	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.UserID)
	}

	members, err := s.userRepo.ListUsersByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal("resolving members", err)
	}
	return members, nil
}

// deriveDisplayName renders a direct conversation as the other member's name
// and a group as its own name.
func deriveDisplayName(conversation *dbmysql.Conversation, members []*dbmysql.User, viewerID string) string {
	if !conversation.IsDirectMessage {
		return conversation.Name
	}
	for _, member := range members {
		if member.UserID != viewerID {
			return member.DisplayName
		}
	}
	return unknownUserName
}

func uniqueUnion(first string, rest []string) []string {
	seen := map[string]bool{first: true}
	out := []string{first}
	for _, id := range rest {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
