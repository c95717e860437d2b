package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"lites-backend/internal/domain"
	"lites-backend/internal/middleware"
	"lites-backend/internal/services"
	lites_errors "lites-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// fakeStore is the in-memory backing state shared by the repository fakes.
// Creation timestamps come from a ticking clock so ordering is deterministic.
type fakeStore struct {
	now time.Time

	nextUserID    int64
	nextChatID    int64
	nextMessageID int64
	nextPaymentID int64

	users    map[int64]*domain.User
	chats    []*domain.Chat
	members  []domain.ChatMember
	messages []*domain.Message
	contacts []domain.Contact
	payments []*domain.Payment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		now:   time.Now(),
		users: make(map[int64]*domain.User),
	}
}

func (st *fakeStore) tick() time.Time {
	st.now = st.now.Add(time.Second)
	return st.now
}

func (st *fakeStore) addUser(phone, nickname string) *domain.User {
	st.nextUserID++
	u := &domain.User{
		ID:          st.nextUserID,
		Phone:       phone,
		Nickname:    nickname,
		Username:    nickname,
		AvatarType:  domain.DefaultAvatarType,
		AvatarValue: domain.DefaultAvatarValue,
		CreatedAt:   st.tick(),
	}
	st.users[u.ID] = u
	return u
}

type fakeUserRepo struct{ st *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	for _, e := range r.st.users {
		if e.Phone == u.Phone {
			return fmt.Errorf("duplicate key value violates unique constraint %q", "users_phone_key")
		}
	}
	r.st.nextUserID++
	u.ID = r.st.nextUserID
	u.CreatedAt = r.st.tick()
	cp := *u
	r.st.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByPhone(ctx context.Context, phone string) (domain.User, error) {
	for _, u := range r.st.users {
		if u.Phone == phone {
			return *u, nil
		}
	}
	return domain.User{}, lites_errors.ErrNotFound
}

func (r *fakeUserRepo) TouchLastOnline(ctx context.Context, userID int64, at time.Time) error {
	if u, ok := r.st.users[userID]; ok {
		u.LastOnline = &at
	}
	return nil
}

func (r *fakeUserRepo) ActivatePremium(ctx context.Context, userID int64, until time.Time) error {
	u, ok := r.st.users[userID]
	if !ok {
		return lites_errors.ErrNotFound
	}
	u.IsPremium = true
	u.PremiumUntil = &until
	return nil
}

type fakeChatRepo struct{ st *fakeStore }

func (r *fakeChatRepo) CreateChat(ctx context.Context, c *domain.Chat) error {
	r.st.nextChatID++
	c.ID = r.st.nextChatID
	c.CreatedAt = r.st.tick()
	cp := *c
	r.st.chats = append(r.st.chats, &cp)
	return nil
}

func (r *fakeChatRepo) AddMember(ctx context.Context, m *domain.ChatMember) error {
	for _, e := range r.st.members {
		if e.ChatID == m.ChatID && e.UserID == m.UserID {
			return fmt.Errorf("duplicate key value violates unique constraint %q", "chat_members_pkey")
		}
	}
	m.JoinedAt = r.st.tick()
	r.st.members = append(r.st.members, *m)
	return nil
}

func (r *fakeChatRepo) ListUserChats(ctx context.Context, userID int64) ([]domain.ChatSummary, error) {
	summaries := make([]domain.ChatSummary, 0)
	for i := len(r.st.chats) - 1; i >= 0; i-- {
		c := r.st.chats[i]
		if !r.belongs(c, userID) {
			continue
		}
		summaries = append(summaries, domain.ChatSummary{
			ID:          c.ID,
			Type:        c.Type,
			Name:        c.Name,
			Description: c.Description,
			AvatarURL:   c.AvatarURL,
			LastMessage: r.lastMessage(c.ID),
		})
	}
	return summaries, nil
}

func (r *fakeChatRepo) belongs(c *domain.Chat, userID int64) bool {
	if c.CreatedBy == userID {
		return true
	}
	for _, m := range r.st.members {
		if m.ChatID == c.ID && m.UserID == userID {
			return true
		}
	}
	return false
}

func (r *fakeChatRepo) lastMessage(chatID int64) *string {
	var last *domain.Message
	for _, m := range r.st.messages {
		if m.ChatID != chatID {
			continue
		}
		if last == nil || !m.CreatedAt.Before(last.CreatedAt) {
			last = m
		}
	}
	if last == nil {
		return nil
	}
	content := last.Content
	return &content
}

type fakeMessageRepo struct{ st *fakeStore }

func (r *fakeMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	r.st.nextMessageID++
	m.ID = r.st.nextMessageID
	m.CreatedAt = r.st.tick()
	cp := *m
	r.st.messages = append(r.st.messages, &cp)
	return nil
}

func (r *fakeMessageRepo) ListChatMessages(ctx context.Context, chatID int64, limit int) ([]domain.MessageWithSender, error) {
	var rows []*domain.Message
	for _, m := range r.st.messages {
		if m.ChatID == chatID {
			rows = append(rows, m)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	result := make([]domain.MessageWithSender, 0, len(rows))
	for _, m := range rows {
		sender := r.st.users[m.SenderID]
		if sender == nil {
			sender = &domain.User{}
		}
		result = append(result, domain.MessageWithSender{
			ID:                m.ID,
			SenderID:          m.SenderID,
			Content:           m.Content,
			MessageType:       m.MessageType,
			CreatedAt:         m.CreatedAt,
			SenderNickname:    sender.Nickname,
			SenderAvatarType:  sender.AvatarType,
			SenderAvatarValue: sender.AvatarValue,
		})
	}
	return result, nil
}

type fakeContactRepo struct{ st *fakeStore }

func (r *fakeContactRepo) Add(ctx context.Context, c *domain.Contact) error {
	for _, e := range r.st.contacts {
		if e.UserID == c.UserID && e.ContactID == c.ContactID {
			return nil
		}
	}
	c.CreatedAt = r.st.tick()
	r.st.contacts = append(r.st.contacts, *c)
	return nil
}

func (r *fakeContactRepo) ListWithProfiles(ctx context.Context, userID int64) ([]domain.ContactProfile, error) {
	profiles := make([]domain.ContactProfile, 0)
	for _, c := range r.st.contacts {
		if c.UserID != userID {
			continue
		}
		u := r.st.users[c.ContactID]
		if u == nil {
			continue
		}
		profiles = append(profiles, domain.ContactProfile{
			ID:          u.ID,
			Nickname:    u.Nickname,
			Username:    u.Username,
			AvatarType:  u.AvatarType,
			AvatarValue: u.AvatarValue,
			IsPremium:   u.IsPremium,
		})
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Nickname < profiles[j].Nickname
	})
	return profiles, nil
}

type fakePaymentRepo struct{ st *fakeStore }

func (r *fakePaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	r.st.nextPaymentID++
	p.ID = r.st.nextPaymentID
	p.CreatedAt = r.st.tick()
	cp := *p
	r.st.payments = append(r.st.payments, &cp)
	return nil
}

func (r *fakePaymentRepo) CompleteByTransactionID(ctx context.Context, transactionID string, at time.Time) (domain.PaymentConfirmation, error) {
	for _, p := range r.st.payments {
		if p.TransactionID == transactionID {
			p.Status = domain.PaymentStatusCompleted
			p.CompletedAt = &at
			return domain.PaymentConfirmation{UserID: p.UserID, PaymentType: p.PaymentType}, nil
		}
	}
	return domain.PaymentConfirmation{}, lites_errors.ErrNotFound
}

func (r *fakePaymentRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	var rows []domain.Payment
	for _, p := range r.st.payments {
		if p.UserID == userID {
			rows = append(rows, *p)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows, nil
}

// newTestServer wires the handlers to services running directly on the
// fakes, behind the same middleware stack the real router uses for CORS.
func newTestServer(t *testing.T) (*fakeStore, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := newFakeStore()
	users := &fakeUserRepo{st: st}
	chats := &fakeChatRepo{st: st}
	messages := &fakeMessageRepo{st: st}
	contacts := &fakeContactRepo{st: st}
	payments := &fakePaymentRepo{st: st}

	authHandler := NewAuthHandler(services.NewAuthService(users))
	chatHandler := NewChatHandler(services.NewChatService(nil, chats, messages, contacts))
	paymentHandler := NewPaymentHandler(services.NewPaymentService(nil, payments, users, nil))

	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	r.Any("/auth", authHandler.Handle)
	r.Any("/chats", chatHandler.Handle)
	r.Any("/payments", paymentHandler.Handle)
	return st, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
