package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/imalriyad/bistro-boss-server/entity"
	"github.com/imalriyad/bistro-boss-server/middlewares"
	"github.com/imalriyad/bistro-boss-server/services"
	"github.com/imalriyad/bistro-boss-server/utils"
)

var testSecret = []byte("test-secret")

// ---- in-memory stores ----

type memUserStore struct{ users []entity.User }

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return &m.users[i], nil
		}
	}
	return nil, nil
}
func (m *memUserStore) Insert(_ context.Context, u *entity.User) (string, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users = append(m.users, *u)
	return u.ID.Hex(), nil
}
func (m *memUserStore) List(_ context.Context) ([]entity.User, error) { return m.users, nil }
func (m *memUserStore) SetRole(_ context.Context, id primitive.ObjectID, role string) (int64, int64, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Role = role
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}
func (m *memUserStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memCartStore struct{ items []entity.CartItem }

func (m *memCartStore) FindByIDAndEmail(_ context.Context, id primitive.ObjectID, email string) (*entity.CartItem, error) {
	for i := range m.items {
		if m.items[i].ID == id && m.items[i].Email == email {
			return &m.items[i], nil
		}
	}
	return nil, nil
}
func (m *memCartStore) Insert(_ context.Context, item *entity.CartItem) (string, error) {
	m.items = append(m.items, *item)
	return item.ID.Hex(), nil
}
func (m *memCartStore) List(_ context.Context, email string) ([]entity.CartItem, error) {
	if email == "" {
		return m.items, nil
	}
	var out []entity.CartItem
	for _, it := range m.items {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}
func (m *memCartStore) DeleteByID(_ context.Context, id string) (int64, error) {
	for i := range m.items {
		if m.items[i].ID.Hex() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeIntentCreator struct {
	gotAmount   int64
	gotCurrency string
}

func (f *fakeIntentCreator) CreateIntent(_ context.Context, amountCents int64, currency string) (string, error) {
	f.gotAmount = amountCents
	f.gotCurrency = currency
	return "pi_test_secret", nil
}

// ---- helpers ----

func jsonReq(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(method, path, bytes.NewBuffer(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateToken(jwt.MapClaims{"email": email}, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

// ---- tests ----

func TestIssueToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAuthController(testSecret, time.Hour, services.NewUserService(&memUserStore{}))
	r.POST("/api/v1/jwt", ctrl.IssueToken)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(t, http.MethodPost, "/api/v1/jwt", gin.H{"email": "a@x.com"}))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	claims, err := utils.ParseToken(body.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
}

func TestUserRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &memUserStore{users: []entity.User{
		{ID: primitive.NewObjectID(), Email: "admin@x.com", Role: "admin"},
	}}
	ctrl := NewAuthController(testSecret, time.Hour, services.NewUserService(store))
	r := gin.New()
	r.GET("/api/v1/getUserRole/:email", middlewares.AuthMiddleware(testSecret), ctrl.UserRole)

	// Asking about someone else's email is forbidden.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/getUserRole/other@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "admin@x.com"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Own email reports the stored role.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/getUserRole/admin@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "admin@x.com"))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":true}`, w.Body.String())

	// Unknown users are simply not admins.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/getUserRole/ghost@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "ghost@x.com"))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &memUserStore{}
	ctrl := NewUserController(services.NewUserService(store))
	r := gin.New()
	r.POST("/api/v1/create-user", ctrl.Create)

	body := gin.H{"email": "a@x.com", "name": "A"}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(t, http.MethodPost, "/api/v1/create-user", body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "insertedId")

	// Second create is a no-op answered with a plain message.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(t, http.MethodPost, "/api/v1/create-user", body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Already have an account with this email", w.Body.String())
	assert.Len(t, store.users, 1)
}

func TestAdminGatedUsersList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &memUserStore{users: []entity.User{
		{ID: primitive.NewObjectID(), Email: "admin@x.com", Role: "admin"},
		{ID: primitive.NewObjectID(), Email: "user@x.com", Role: "customer"},
	}}
	ctrl := NewUserController(services.NewUserService(store))
	r := gin.New()
	r.GET("/api/v1/users", middlewares.AuthMiddleware(testSecret), middlewares.AdminMiddleware(store), ctrl.List)

	// No token.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid non-admin token.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "user@x.com"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin token.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "admin@x.com"))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var users []entity.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestAddToCart_DuplicatePair(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &memCartStore{}
	ctrl := NewCartController(services.NewCartService(store))
	r := gin.New()
	r.POST("/api/v1/add-to-cart", ctrl.Add)

	item := gin.H{"_id": primitive.NewObjectID().Hex(), "email": "a@x.com", "name": "Pizza", "price": 12.5}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(t, http.MethodPost, "/api/v1/add-to-cart", item))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "insertedId")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(t, http.MethodPost, "/api/v1/add-to-cart", item))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Item already added to the cart"}`, w.Body.String())
	assert.Len(t, store.items, 1)
}

func TestCreatePaymentIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	intents := &fakeIntentCreator{}
	svc := services.NewPaymentService(nil, nil, intents)
	ctrl := NewPaymentController(svc)
	r := gin.New()
	r.POST("/api/v1/create-payment-intent", ctrl.CreateIntent)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(t, http.MethodPost, "/api/v1/create-payment-intent", gin.H{"price": 20}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_test_secret"}`, w.Body.String())
	assert.Equal(t, int64(2000), intents.gotAmount)
	assert.Equal(t, "usd", intents.gotCurrency)
}
