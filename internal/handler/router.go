/*
Package handler provides the HTTP handlers and routing setup for the U Fresher server.
This file defines the main Router, applying necessary middleware like logging, CORS,
IP-based rate limiting and proof-of-work gates before delegating requests to
specific handlers (API and WebSocket).
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"ufresher/internal/pkg/auth/jwt"
	"ufresher/internal/pkg/limiter"
	"ufresher/internal/pkg/logx"
	"ufresher/internal/pkg/resp"
)

const (
	LoginRate  = 0.2
	LoginBurst = 5
	JoinRate   = 0.2
	JoinBurst  = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters, configures CORS, and applies global and per-route middleware.
func Router(deps *AppDeps) http.Handler {
	loginLimiter := limiter.NewIPRateLimiter(rate.Limit(LoginRate), LoginBurst)
	joinLimiter := limiter.NewIPRateLimiter(rate.Limit(JoinRate), JoinBurst)

	r := chi.NewRouter()

	allowedOrigins := make(map[string]struct{})
	for _, origin := range deps.Config.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	var wsUpgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if deps.Config.IsDevelopment() {
				return true
			}

			origin := r.Header.Get("Origin")
			if _, ok := allowedOrigins[origin]; ok {
				return true
			}

			logx.Warn("WebSocket connection rejected: Origin not allowed.", "origin", origin)
			return false
		},
	}

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-PoW-Token"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r.Use(c.Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		logx.Info("Health check endpoint hit")
		data := map[string]string{
			"status":  "ok",
			"service": "U Fresher Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Route("/auth", func(auth chi.Router) {
			auth.With(loginLimiter.Middleware).Post("/login", HandleLogin(deps))
			auth.With(deps.Pow.Middleware).Post("/signup", HandleSignup(deps))
			auth.Post("/logout", HandleLogout(deps))
		})

		api.Get("/session", HandleGetSession(deps))
		api.Post("/communities/{id}/join", HandleJoinCommunity(deps))

		api.Route("/colleges", func(colleges chi.Router) {
			colleges.Get("/", HandleListColleges(deps))
			colleges.Get("/{id}", HandleGetCollege(deps))
			colleges.With(deps.Pow.Middleware).Post("/{id}/posts", HandleCreatePost(deps))
			colleges.With(deps.Pow.Middleware).Post("/{id}/collaborations", HandleCreateCollaboration(deps))
		})

		api.Route("/mentors", func(mentors chi.Router) {
			mentors.Get("/", HandleListMentors(deps))
			mentors.Get("/{id}", HandleGetMentor(deps))
			mentors.With(deps.Pow.Middleware).Post("/{id}/bookings", HandleBookSession(deps))
			mentors.With(deps.Pow.Middleware).Post("/{id}/messages", HandleMessageMentor(deps))
		})

		api.Route("/projects", func(projects chi.Router) {
			projects.Get("/", HandleListProjects(deps))
			projects.With(deps.Pow.Middleware).Post("/", HandleCreateProject(deps))
			projects.Post("/{id}/join", HandleJoinProject(deps))
		})

		api.Get("/chat/rooms", HandleListRooms(deps))
		api.Get("/pages/{page}", HandleRenderPage(deps))

		api.Route("/pow", func(p chi.Router) {
			p.Get("/challenge", HandlePowChallenge(deps))
			p.Post("/verify", HandlePowVerify(deps))
		})
	})

	r.With(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret), requireDevice).
		Get("/ws/rooms/{room}", HandleWebSocket(deps, wsUpgrader, joinLimiter))

	return r
}
