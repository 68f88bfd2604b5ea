package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"filippo.io/csrf"
	"github.com/rs/cors"

	"github.com/rmarchant/folio/internal/auth"
	httpmiddleware "github.com/rmarchant/folio/internal/http"
	"github.com/rmarchant/folio/internal/logger"
	"github.com/rmarchant/folio/internal/server"
	"github.com/rmarchant/folio/internal/store"
	"github.com/rmarchant/folio/internal/website"
)

type ServerCmd struct {
	// Server configuration
	Listen string `help:"HTTP server listen address" default:"localhost:3000" env:"FOLIO_LISTEN"`

	// Session configuration
	SessionSecret string        `help:"secret key for HMAC signing of session tokens" env:"FOLIO_SESSION_SECRET"`
	SessionTTL    time.Duration `help:"session TTL" default:"1h" env:"FOLIO_SESSION_TTL"`
	BcryptCost    int           `help:"bcrypt work factor for password digests" default:"12" env:"FOLIO_BCRYPT_COST"`

	// Login throttling
	RateLimitMax    int           `help:"failed login attempts allowed per client per window" default:"5" env:"FOLIO_RATE_LIMIT_MAX"`
	RateLimitWindow time.Duration `help:"login rate limit window" default:"1m" env:"FOLIO_RATE_LIMIT_WINDOW"`

	// CORS configuration
	CORSOrigins []string `help:"allowed CORS origins for API requests" default:"http://localhost:3000" env:"FOLIO_CORS_ORIGINS"`

	// Content configuration
	SkillsFile string `help:"path to the skills catalogue YAML file" default:"" env:"FOLIO_SKILLS_FILE"`
	StaticDir  string `help:"directory served under /public/" default:"public" env:"FOLIO_STATIC_DIR"`

	// Production marks session cookies Secure.
	Production bool `help:"production mode" default:"false" env:"FOLIO_PRODUCTION"`

	Store StoreFlags `embed:""`
}

// Validate fails startup before any listener is opened when the session
// secret is missing or too short.
func (c *ServerCmd) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("session secret is required (--session-secret or FOLIO_SESSION_SECRET)")
	}
	if len(c.SessionSecret) < 32 {
		return errors.New("session secret must be at least 32 bytes (256 bits) for HMAC-SHA256")
	}
	return nil
}

func (c *ServerCmd) Run(globals *Globals) error {
	log := logger.Setup(globals.Debug)
	ctx := context.Background()

	log.Info().Str("version", globals.Version).Bool("debug", globals.Debug).Msg("Starting server")

	codec, err := auth.NewTokenCodec([]byte(c.SessionSecret), c.SessionTTL)
	if err != nil {
		return fmt.Errorf("failed to configure session tokens: %w", err)
	}

	hasher, err := auth.NewHasher(c.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to configure password hashing: %w", err)
	}

	stores, err := c.Store.openStores(ctx)
	if err != nil {
		return err
	}
	defer stores.Close()
	log.Info().Str("store", c.Store.StoreType).Msg("Stores ready")

	skills, err := website.LoadSkills(c.SkillsFile)
	if err != nil {
		return fmt.Errorf("failed to load skills catalogue: %w", err)
	}

	pages, err := website.New(skills)
	if err != nil {
		return fmt.Errorf("failed to load page templates: %w", err)
	}

	gate := auth.NewSessionGate(codec)
	limiter := auth.NewLimiter(c.RateLimitMax, c.RateLimitWindow)

	api := server.New(server.Config{
		Users:         stores.Users,
		Projects:      stores.Projects,
		Contacts:      stores.Contacts,
		Codec:         codec,
		Gate:          gate,
		Hasher:        hasher,
		Limiter:       limiter,
		Skills:        skills,
		SecureCookies: c.Production,
	})

	mux := newSiteMux(pages, gate, stores.Projects, api.Handler(), c.StaticDir)

	// CSRF protection for HTML pages (not applied to API routes)
	protection := csrf.New()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// API routes get CORS, HTML routes get CSRF
		if isAPIRoute(r.URL.Path) {
			withCORS(c.CORSOrigins, mux).ServeHTTP(w, r)
		} else {
			protection.Handler(mux).ServeHTTP(w, r)
		}
	})

	wrapped := logger.Requests(log)(
		httpmiddleware.ClientIPMiddleware()(
			httpmiddleware.SecurityHeaders()(handler)))

	srv := configureHTTPServer(c.Listen, wrapped)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", c.Listen).Bool("production", c.Production).Msg("Starting HTTP server")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// newSiteMux assembles the full route table: pages behind the session gate,
// static assets, the health check and the API namespace. The dashboard is a
// single page but its whole subtree is routed to it so deep links stay
// inside the gate.
func newSiteMux(pages *website.Pages, gate *auth.SessionGate, projects store.ProjectStore, api http.Handler, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// The gate redirects anonymous visitors off /dashboard and logged-in
	// visitors off /login.
	sessionGate := gate.Middleware()

	mux.Handle("/", sessionGate(pages.Index(projects)))
	mux.Handle("/login", sessionGate(pages.Login()))
	mux.Handle("/dashboard", sessionGate(pages.Dashboard()))
	mux.Handle("/dashboard/", sessionGate(pages.Dashboard()))

	mux.Handle("/public/", http.StripPrefix("/public/", http.FileServer(http.Dir(staticDir))))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.Handle("/api/", api)

	return mux
}

// isAPIRoute returns true if the path is an API route that needs CORS instead of CSRF
func isAPIRoute(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

// withCORS adds CORS support for browser clients on other origins.
func withCORS(allowedOrigins []string, h http.Handler) http.Handler {
	middleware := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true, // Required for cookie-based authentication
	})
	return middleware.Handler(h)
}
