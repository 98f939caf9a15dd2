package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/msgs"
	"collabBoard/internal/services"
)

type RestHandler struct {
	authService       *services.AuthenticationService
	roomService       *services.RoomService
	chatService       *services.ChatService
	whiteboardService *services.WhiteboardService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	roomService *services.RoomService,
	chatService *services.ChatService,
	whiteboardService *services.WhiteboardService,
) *RestHandler {
	return &RestHandler{
		authService:       authService,
		roomService:       roomService,
		chatService:       chatService,
		whiteboardService: whiteboardService,
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden),
		errors.Is(err, errs.ErrNotRoomMember),
		errors.Is(err, errs.ErrNotMessageSender):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrRoomNotFound),
		errors.Is(err, errs.ErrMessageNotFound),
		errors.Is(err, errs.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidRequestBody),
		errors.Is(err, errs.ErrInvalidParams),
		errors.Is(err, errs.ErrRoomNameRequired),
		errors.Is(err, errs.ErrElementsRequired),
		errors.Is(err, errs.ErrInvalidRoomId),
		errors.Is(err, errs.ErrInvalidMessageId):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError hides internal details behind a generic envelope for 5xx
// responses.
func abortWithError(ctx *gin.Context, err error) {
	status := statusForError(err)
	response := models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
	}
	if status < http.StatusInternalServerError {
		response.Errors = []string{err.Error()}
	} else {
		log.Printf("Internal error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	}
	ctx.AbortWithStatusJSON(status, response)
}

func (rh *RestHandler) Register(ctx *gin.Context) {
	var user models.User
	if err := ctx.BindJSON(&user); err != nil {
		abortWithError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	_, registerErrs := rh.authService.Register(&user)
	if len(registerErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorsToStrings(registerErrs),
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
	})
}

func (rh *RestHandler) Login(ctx *gin.Context) {
	var loginData models.LoginRequestBody
	if err := ctx.BindJSON(&loginData); err != nil {
		log.Println("Error login data json binding:", err)
		abortWithError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorsToStrings(loginErrs),
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

func (rh *RestHandler) CreateRoom(ctx *gin.Context) {
	var body models.CreateRoomRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	room, err := rh.roomService.CreateRoom(body.Name, currentUserID(ctx))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    room,
	})
}

func (rh *RestHandler) JoinRoom(ctx *gin.Context) {
	roomID := ctx.Param("roomId")
	if roomID == "" {
		abortWithError(ctx, errs.ErrInvalidRoomId)
		return
	}

	roomName, err := rh.roomService.JoinRoom(roomID, currentUserID(ctx))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    gin.H{"room_name": roomName},
	})
}

func (rh *RestHandler) DeleteRoom(ctx *gin.Context) {
	roomID := ctx.Param("roomId")
	if roomID == "" {
		abortWithError(ctx, errs.ErrInvalidRoomId)
		return
	}

	if err := rh.roomService.DeleteRoom(roomID, currentUserID(ctx)); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
	})
}

func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	var body models.SendMessageRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	message, err := rh.chatService.PostMessage(ctx.Request.Context(), body.RoomID, currentUserID(ctx), body.Content, body.TempID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    message,
	})
}

func (rh *RestHandler) GetRoomMessages(ctx *gin.Context) {
	roomID := ctx.Param("roomId")
	if roomID == "" {
		abortWithError(ctx, errs.ErrInvalidRoomId)
		return
	}

	messages, err := rh.chatService.GetRoomMessages(roomID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    messages,
	})
}

func (rh *RestHandler) DeleteMessage(ctx *gin.Context) {
	messageID, err := strconv.Atoi(ctx.Param("messageId"))
	if err != nil || messageID < 1 {
		abortWithError(ctx, errs.ErrInvalidMessageId)
		return
	}

	if err := rh.chatService.DeleteMessage(ctx.Request.Context(), uint(messageID), currentUserID(ctx)); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
	})
}

func (rh *RestHandler) SaveWhiteboard(ctx *gin.Context) {
	roomID := ctx.Param("roomId")
	if roomID == "" {
		abortWithError(ctx, errs.ErrInvalidRoomId)
		return
	}

	var body models.SaveWhiteboardRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithError(ctx, errs.ErrInvalidRequestBody)
		return
	}

	if err := rh.whiteboardService.SaveWhiteboard(ctx.Request.Context(), roomID, body.Elements); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
	})
}

func (rh *RestHandler) GetWhiteboard(ctx *gin.Context) {
	roomID := ctx.Param("roomId")
	if roomID == "" {
		abortWithError(ctx, errs.ErrInvalidRoomId)
		return
	}

	elements, err := rh.whiteboardService.LoadWhiteboard(roomID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    gin.H{"elements": elements},
	})
}

func currentUserID(ctx *gin.Context) uint {
	if id, ok := ctx.Get("user_id"); ok {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}
