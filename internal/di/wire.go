//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"ripple/internal/chat/handler"
	chatrepo "ripple/internal/chat/repository"
	chatservice "ripple/internal/chat/service"
	"ripple/internal/config"
	"ripple/internal/dbmysql"
	"ripple/internal/notif"
	"ripple/internal/user"
	"ripple/internal/ws"
)

// InitializeApplication builds the full object graph; wire generates the body.
func InitializeApplication() (*Application, error) {
	wire.Build(
		config.Load,
		dbmysql.NewMySQL,
		ProvideMongo,
		ProvideAvatarStorage,
		notif.NewBus,
		wire.Bind(new(notif.Publisher), new(*notif.Bus)),
		ws.NewHub,
		user.NewUserRepository,
		user.NewFriendRepository,
		user.NewUserService,
		user.NewFriendService,
		user.NewHandler,
		chatrepo.NewConversationRepository,
		chatrepo.NewMessageRepository,
		chatservice.NewConversationService,
		chatservice.NewMessageService,
		handler.NewChatHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
