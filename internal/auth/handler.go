package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gymplans/internal/telemetry/metrics"
	"github.com/2beens/gymplans/internal/telemetry/tracing"
	"github.com/2beens/gymplans/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	TokenHeader       = "X-GYM-TOKEN"
	minPasswordLength = 8
	// bcrypt only takes the first 72 bytes and refuses longer input
	maxPasswordLength = 72
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type usersRepo interface {
	Add(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type sessionManager interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

type Handler struct {
	usersRepo      usersRepo
	sessions       sessionManager
	metricsManager *metrics.Manager
	// bcrypt cost used when registering, lowered in tests
	PasswordHashCost int
}

func NewHandler(
	usersRepo usersRepo,
	sessions sessionManager,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		usersRepo:        usersRepo,
		sessions:         sessions,
		metricsManager:   metricsManager,
		PasswordHashCost: pkg.PasswordHashCost,
	}
}

// SetupRoutes registers the /a routes and returns their subrouter,
// so the caller can attach the rate limiter to it.
func (handler *Handler) SetupRoutes(mainRouter *mux.Router) *mux.Router {
	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/register", handler.HandleRegister).
		Methods("POST", "OPTIONS").Name("register")
	loginSubrouter.
		HandleFunc("/login", handler.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", handler.HandleLogout).
		Methods("GET", "OPTIONS").Name("logout")
	return loginSubrouter
}

func readCredentials(r *http.Request) (Credentials, error) {
	var creds Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return creds, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return creds, err
		}
		creds = Credentials{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
		}
	}
	creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))
	return creds, nil
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	creds, err := readCredentials(r)
	if err != nil {
		log.Errorf("register, read credentials: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	if creds.Email == "" || !strings.Contains(creds.Email, "@") {
		http.Error(w, "error, invalid email", http.StatusBadRequest)
		return
	}
	if len(creds.Password) < minPasswordLength {
		http.Error(w, "error, password too short", http.StatusBadRequest)
		return
	}
	if len(creds.Password) > maxPasswordLength {
		http.Error(w, "error, password too long", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPasswordWithCost(creds.Password, handler.PasswordHashCost)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "error, failed to register", http.StatusInternalServerError)
		return
	}

	user, err := handler.usersRepo.Add(ctx, &User{
		ID:           uuid.NewString(),
		Email:        creds.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			http.Error(w, "error, user already exists", http.StatusConflict)
			return
		}
		log.Errorf("register user [%s]: %s", creds.Email, err)
		http.Error(w, "error, failed to register", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %s", user.ID)
	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	creds, err := readCredentials(r)
	if err != nil {
		log.Errorf("login, read credentials: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if creds.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	user, err := handler.usersRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[email] failed login attempt for: %s", creds.Email)
			handler.countLogin("failed")
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login, get user [%s]: %s", creds.Email, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for: %s", creds.Email)
		handler.countLogin("failed")
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.sessions.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	handler.countLogin("success")
	log.Trace("new login success")
	pkg.WriteJSON(w, LoginResponse{Token: token, UserID: user.ID}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := r.Header.Get(TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	log.Debugln("logout success")
	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) countLogin(result string) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterLogins.WithLabelValues(result).Inc()
	}
}
