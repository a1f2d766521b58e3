package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

const defaultMaxBodyBytes = 1 << 20

// Handlers groups every HTTP handler served by the router.
type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Support    SupportHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	MaxBodyBytes   int64
	// JWTAuth, when set, lets request logs carry the caller's identity. Routes stay open.
	JWTAuth *jwtauth.JWTAuth
	DB      Pinger
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Content-Disposition", middleware.RequestIDHeader},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.RequestID)

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.BodyLimit(maxBody))

	if opts.JWTAuth != nil {
		r.Use(jwtauth.Verifier(opts.JWTAuth))
		r.Use(middleware.Identify)
	}

	r.Get("/healthz", Healthz)
	if opts.DB != nil {
		r.Get("/readyz", Readyz(opts.DB))
	}

	r.Post("/login", h.Auth.Login)

	r.Route("/employees", func(r chi.Router) {
		r.Post("/add", h.Employee.Add)
		r.Post("/update", h.Employee.Update)
		r.Post("/remove", h.Employee.Remove)
		r.Get("/all", h.Employee.List)
		r.Get("/count", h.Employee.Count)
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.Attendance.List)
		r.Post("/checkin", h.Attendance.CheckIn)
		r.Get("/present_count", h.Attendance.PresentCount)
		r.Get("/absent_count", h.Attendance.AbsentCount)
		r.Get("/count", h.Attendance.Count)
	})

	r.Route("/payroll", func(r chi.Router) {
		r.Get("/", h.Payroll.List)
		r.Post("/generate", h.Payroll.Generate)
		r.Get("/export", h.Payroll.Export)
	})

	r.Route("/leave", func(r chi.Router) {
		r.Get("/", h.Leave.List)
		r.Post("/request", h.Leave.Submit)
	})

	r.Get("/api/requests", h.Support.ListRequests)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not found"}`))
	})

	return r
}
