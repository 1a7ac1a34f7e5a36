package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ripple/internal/dbmysql"
	"ripple/internal/notif"
	apperrors "ripple/pkg/errors"
)

// FriendRequestView annotates a pending record with the far-side user for
// display.
type FriendRequestView struct {
	Friendship *dbmysql.Friendship `json:"friendship"`
	Requester  *dbmysql.User       `json:"requester,omitempty"`
	Recipient  *dbmysql.User       `json:"recipient,omitempty"`
}

// FriendService is the friendship ledger. State machine per unordered pair:
// none -> pending -> accepted | rejected, both terminal.
type FriendService interface {
	SendRequest(ctx context.Context, fromUserID, toUserID string) (*dbmysql.Friendship, error)
	AcceptRequest(ctx context.Context, friendshipID uint64) (*dbmysql.Friendship, error)
	RejectRequest(ctx context.Context, friendshipID uint64) (*dbmysql.Friendship, error)
	ListFriends(ctx context.Context, userID string) ([]*dbmysql.User, error)
	ListPendingRequests(ctx context.Context, userID string) ([]*FriendRequestView, error)
	ListSentRequests(ctx context.Context, userID string) ([]*FriendRequestView, error)
}

type friendService struct {
	friendRepo FriendRepository
	userRepo   UserRepository
	events     notif.Publisher
}

func NewFriendService(friendRepo FriendRepository, userRepo UserRepository, events notif.Publisher) FriendService {
	return &friendService{friendRepo: friendRepo, userRepo: userRepo, events: events}
}

// SendRequest inserts a pending record unless any record already exists
// between the pair, in either direction and in any status. A rejected record
// therefore keeps blocking re-requests.
//
// The existence check and the insert are two store operations; two concurrent
// calls for the same pair can both pass the check, and the unique index only
// covers one ordering, so a crossed pair of requests can leave two rows.
func (s *friendService) SendRequest(ctx context.Context, fromUserID, toUserID string) (*dbmysql.Friendship, error) {
	if fromUserID == toUserID {
		return nil, apperrors.InvalidArg("cannot send a friend request to yourself")
	}

	exists, err := s.friendRepo.FriendshipExists(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, apperrors.Internal("checking for existing friendship", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateRelationship(fromUserID, toUserID)
	}

	friendship := &dbmysql.Friendship{
		UserID:       fromUserID,
		FriendUserID: toUserID,
		Status:       dbmysql.FriendshipPending,
		RequestedBy:  fromUserID,
	}
	if err := s.friendRepo.CreateFriendship(ctx, friendship); err != nil {
		return nil, apperrors.Internal("creating friendship", err)
	}

	s.events.Publish(notif.Event{
		Type:         notif.FriendRequestReceived,
		UserID:       toUserID,
		ActorID:      fromUserID,
		FriendshipID: friendship.FriendshipID,
	})
	return friendship, nil
}

// AcceptRequest moves a pending record to accepted. Accepted is terminal.
func (s *friendService) AcceptRequest(ctx context.Context, friendshipID uint64) (*dbmysql.Friendship, error) {
	friendship, err := s.getFriendship(ctx, friendshipID)
	if err != nil {
		return nil, err
	}
	if friendship.Status != dbmysql.FriendshipPending {
		return nil, apperrors.ErrFriendshipNotPending(friendshipID, friendship.Status)
	}

	friendship.Status = dbmysql.FriendshipAccepted
	if err := s.friendRepo.UpdateFriendship(ctx, friendship); err != nil {
		return nil, apperrors.Internal("updating friendship", err)
	}

	s.events.Publish(notif.Event{
		Type:         notif.FriendRequestAccepted,
		UserID:       friendship.RequestedBy,
		ActorID:      friendship.OtherSide(friendship.RequestedBy),
		FriendshipID: friendship.FriendshipID,
	})
	return friendship, nil
}

// RejectRequest unconditionally sets the record to rejected; re-rejecting is
// allowed and idempotent.
func (s *friendService) RejectRequest(ctx context.Context, friendshipID uint64) (*dbmysql.Friendship, error) {
	friendship, err := s.getFriendship(ctx, friendshipID)
	if err != nil {
		return nil, err
	}

	friendship.Status = dbmysql.FriendshipRejected
	if err := s.friendRepo.UpdateFriendship(ctx, friendship); err != nil {
		return nil, apperrors.Internal("updating friendship", err)
	}
	return friendship, nil
}

// ListFriends returns the far-side user of every accepted record where userID
// appears on either side. Deduplicated by construction since at most one
// record exists per pair.
func (s *friendService) ListFriends(ctx context.Context, userID string) ([]*dbmysql.User, error) {
	friendships, err := s.friendRepo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("listing friendships", err)
	}

	friendIDs := make([]string, 0, len(friendships))
	for _, f := range friendships {
		friendIDs = append(friendIDs, f.OtherSide(userID))
	}

	friends, err := s.userRepo.ListUsersByIDs(ctx, friendIDs)
	if err != nil {
		return nil, apperrors.Internal("resolving friends", err)
	}
	return friends, nil
}

func (s *friendService) ListPendingRequests(ctx context.Context, userID string) ([]*FriendRequestView, error) {
	friendships, err := s.friendRepo.ListIncomingPending(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("listing pending requests", err)
	}
	return s.annotate(ctx, friendships, func(f *dbmysql.Friendship) string { return f.UserID }, true)
}

func (s *friendService) ListSentRequests(ctx context.Context, userID string) ([]*FriendRequestView, error) {
	friendships, err := s.friendRepo.ListOutgoingPending(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("listing sent requests", err)
	}
	return s.annotate(ctx, friendships, func(f *dbmysql.Friendship) string { return f.FriendUserID }, false)
}

// annotate resolves the far-side user of each record, dropping records whose
// user no longer exists.
func (s *friendService) annotate(ctx context.Context, friendships []*dbmysql.Friendship, farSide func(*dbmysql.Friendship) string, incoming bool) ([]*FriendRequestView, error) {
	ids := make([]string, 0, len(friendships))
	for _, f := range friendships {
		ids = append(ids, farSide(f))
	}

	users, err := s.userRepo.ListUsersByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal("resolving request users", err)
	}
	byID := make(map[string]*dbmysql.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}

	views := make([]*FriendRequestView, 0, len(friendships))
	for _, f := range friendships {
		u, ok := byID[farSide(f)]
		if !ok {
			continue
		}
		view := &FriendRequestView{Friendship: f}
		if incoming {
			view.Requester = u
		} else {
			view.Recipient = u
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *friendService) getFriendship(ctx context.Context, friendshipID uint64) (*dbmysql.Friendship, error) {
	friendship, err := s.friendRepo.GetFriendship(ctx, friendshipID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrFriendshipNotFound(friendshipID)
	}
	if err != nil {
		return nil, apperrors.Internal("looking up friendship", err)
	}
	return friendship, nil
}
