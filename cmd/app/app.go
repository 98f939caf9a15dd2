package app

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"collabBoard/configs"
	"collabBoard/internal/broker"
	"collabBoard/internal/crypto"
	"collabBoard/internal/handlers"
	"collabBoard/internal/repositories"
	"collabBoard/internal/servers/database"
	"collabBoard/internal/servers/http"
	"collabBoard/internal/services"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.configs = configs.GetConfig()
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.addr"),
	})

	db := database.GetDB(app.configs)
	redisBroker := broker.NewRedisBroker(app.redis)
	cipher := crypto.NewCipher(app.configs.Viper.GetString("encryption.secret"))

	authRepo := repositories.NewAuthenticationRepository(db)
	authService := services.NewAuthenticationService(authRepo, app.configs)
	roomRepo := repositories.NewRoomRepository(db)
	roomService := services.NewRoomService(roomRepo)
	chatRepo := repositories.NewChatRepository(db)
	chatService := services.NewChatService(chatRepo, cipher, redisBroker)
	whiteboardRepo := repositories.NewWhiteboardRepository(db)
	whiteboardService := services.NewWhiteboardService(
		whiteboardRepo,
		redisBroker,
		app.configs.Viper.GetInt("broadcast.soft_limit"),
	)

	restHandler := handlers.NewRestHandler(
		authService,
		roomService,
		chatService,
		whiteboardService,
	)
	socketHandler := handlers.NewSocketHandler(redisBroker, app.ctx, authService)

	http.NewHttpServer(
		app.ctx,
		app.configs.Viper.GetInt("server.port"),
		restHandler,
		socketHandler,
	).Run()
}
