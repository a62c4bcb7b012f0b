package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/modelboard/backend/auth"
	"github.com/modelboard/backend/conf"
	"github.com/modelboard/backend/pages"
	"github.com/modelboard/backend/subm"
	"github.com/modelboard/backend/user"
)

type HttpServer struct {
	cfg       conf.Contest
	submSrvc  *subm.SubmissionSrvc
	userSrvc  *user.UserSrvc
	pagesSrvc *pages.PagesSrvc
	jwtKey    []byte
	router    *chi.Mux
}

func NewHttpServer(
	cfg conf.Contest,
	submSrvc *subm.SubmissionSrvc,
	userSrvc *user.UserSrvc,
	pagesSrvc *pages.PagesSrvc,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("modelboard", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		cfg:       cfg,
		submSrvc:  submSrvc,
		userSrvc:  userSrvc,
		pagesSrvc: pagesSrvc,
		jwtKey:    jwtKey,
		router:    router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/users", httpserver.authRegister)
	r.Post("/auth/login", httpserver.authLogin)
	r.Post("/submissions", httpserver.createSubmission)
	r.Get("/submissions", httpserver.listSubmissions)
	r.Post("/selections", httpserver.selectFinal)
	r.Get("/leaderboard", httpserver.getLeaderboard)
	r.Get("/pages/{page}", httpserver.getPage)
	r.Handle("/metrics", promhttp.Handler())
}
