package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	"collabBoard/internal/handlers"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx           context.Context
	port          int
	router        *gin.Engine
	restHandler   *handlers.RestHandler
	socketHandler *handlers.SocketHandler
}

func NewHttpServer(
	ctx context.Context,
	port int,
	restHandler *handlers.RestHandler,
	socketHandler *handlers.SocketHandler,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:           ctx,
			port:          port,
			restHandler:   restHandler,
			socketHandler: socketHandler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.router = gin.Default()
	hs.setupRoutes()

	server := hs.startServer()
	hs.waitForShutdown(server)
}

func (hs *HttpServer) setupRoutes() {
	hs.router.POST("/register", hs.restHandler.Register)
	hs.router.POST("/login", hs.restHandler.Login)

	api := hs.router.Group("/api", hs.restHandler.MustAuthenticateMiddleware())
	api.POST("/rooms", hs.restHandler.CreateRoom)
	api.POST("/rooms/:roomId/join", hs.restHandler.JoinRoom)
	api.DELETE("/rooms/:roomId", hs.restHandler.DeleteRoom)
	api.GET("/rooms/:roomId/messages", hs.restHandler.GetRoomMessages)
	api.POST("/messages", hs.restHandler.SendMessage)
	api.DELETE("/messages/:messageId", hs.restHandler.DeleteMessage)
	api.GET("/rooms/:roomId/whiteboard", hs.restHandler.GetWhiteboard)
	api.POST("/rooms/:roomId/whiteboard", hs.restHandler.SaveWhiteboard)

	hs.router.GET("/ws", hs.socketHandler.HandleSocketRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", hs.port),
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on :%d", hs.port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	hs.socketHandler.Shutdown()

	log.Println("Server exiting")
}
