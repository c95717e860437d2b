package handler

import (
	"net/http"

	"lites-backend/internal/services"
	"lites-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat creation, messaging and contacts.
type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodPost:
		h.handlePost(c)
	case http.MethodGet:
		h.handleGet(c)
	default:
		writeInvalidRequest(c)
	}
}

func (h *ChatHandler) handlePost(c *gin.Context) {
	var req httpdto.ChatPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c)
		return
	}

	switch httpdto.ChatAction(req.Action) {
	case httpdto.ChatActionCreateChat:
		h.createChat(c, req)
	case httpdto.ChatActionSendMessage:
		h.sendMessage(c, req)
	case httpdto.ChatActionAddContact:
		h.addContact(c, req)
	default:
		writeInvalidRequest(c)
	}
}

func (h *ChatHandler) handleGet(c *gin.Context) {
	switch httpdto.ChatAction(c.Query("action")) {
	case httpdto.ChatActionGetChats:
		userID, ok := idQuery(c, "user_id")
		if !ok {
			writeInvalidRequest(c)
			return
		}
		chats, err := h.service.Chats(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, httpdto.NewChatsResponse(chats))
	case httpdto.ChatActionGetMessages:
		chatID, ok := idQuery(c, "chat_id")
		if !ok {
			writeInvalidRequest(c)
			return
		}
		messages, err := h.service.Messages(c.Request.Context(), chatID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, httpdto.NewMessagesResponse(messages))
	case httpdto.ChatActionGetContacts:
		userID, ok := idQuery(c, "user_id")
		if !ok {
			writeInvalidRequest(c)
			return
		}
		contacts, err := h.service.Contacts(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, httpdto.NewContactsResponse(contacts))
	default:
		writeInvalidRequest(c)
	}
}

func (h *ChatHandler) createChat(c *gin.Context, req httpdto.ChatPostRequest) {
	chatID, err := h.service.CreateChat(c.Request.Context(), services.CreateChatInput{
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		Members:     req.Members,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.CreateChatResponse{Success: true, ChatID: chatID})
}

func (h *ChatHandler) sendMessage(c *gin.Context, req httpdto.ChatPostRequest) {
	m, err := h.service.SendMessage(c.Request.Context(), services.SendMessageInput{
		ChatID:      req.ChatID,
		SenderID:    req.SenderID,
		Content:     req.Content,
		MessageType: req.MessageType,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSendMessageResponse(m))
}

func (h *ChatHandler) addContact(c *gin.Context, req httpdto.ChatPostRequest) {
	if err := h.service.AddContact(c.Request.Context(), req.UserID, req.ContactID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewOKResponse())
}
