package di

import (
	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"ripple/internal/chat/handler"
	chatservice "ripple/internal/chat/service"
	"ripple/internal/config"
	"ripple/internal/dbmongo"
	"ripple/internal/notif"
	"ripple/internal/user"
	"ripple/internal/ws"
)

// Application bundles everything the binary needs once wiring is done.
type Application struct {
	Config      *config.Config
	DB          *gorm.DB
	Mongo       *dbmongo.MongoClient
	Bus         *notif.Bus
	Hub         *ws.Hub
	UserHandler *user.Handler
	ChatHandler *handler.ChatHandler

	// Kept for shutdown and tests.
	Conversations chatservice.ConversationService
	Messages      chatservice.MessageService
}

// ProvideMongo connects to MongoDB when the avatar store is enabled; a nil
// client disables the avatar endpoints without failing startup.
func ProvideMongo(cfg *config.Config) *dbmongo.MongoClient {
	if !cfg.MongoDB.Enabled {
		return nil
	}
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Warn("mongo unavailable, avatar storage disabled", "err", err)
		return nil
	}
	return client
}

func ProvideAvatarStorage(client *dbmongo.MongoClient) *dbmongo.AvatarStorage {
	if client == nil {
		return nil
	}
	return dbmongo.NewAvatarStorage(client)
}
