package http

import (
	"net/http"
	"sync"

	"github.com/dkovalev/go-db-console/internal/config"
	"github.com/dkovalev/go-db-console/internal/logger"
	"github.com/dkovalev/go-db-console/internal/prefs"
	"github.com/dkovalev/go-db-console/internal/request"
	"github.com/dkovalev/go-db-console/internal/utils"
)

// Handler serves the settings API. It holds the long-lived base resolver
// (defaults + site configuration); every request works on a snapshot of it,
// so no handler ever observes a half-reloaded configuration.
type Handler struct {
	mu   sync.RWMutex
	base *config.Resolver

	// store is the durable preference store. Nil when the deployment has no
	// configuration database; sessions then fall back to cookie storage.
	store prefs.Store

	themes *prefs.StaticRegistry
	langs  *prefs.StaticRegistry

	cfg    *config.BootConfig
	logger *logger.Logger
}

// NewHandler wires the settings API over a base resolver.
func NewHandler(base *config.Resolver, store prefs.Store, cfg *config.BootConfig, log *logger.Logger) *Handler {
	log.Info().Msg("http handler created")
	return &Handler{
		base:   base,
		store:  store,
		themes: prefs.NewStaticRegistry("pmahomme", "original", "metro"),
		langs:  prefs.NewStaticRegistry("en", "de", "fr", "ru"),
		cfg:    cfg,
		logger: log,
	}
}

// ReplaceBase swaps in a freshly loaded base resolver. The site-config
// watcher calls this after a successful reload; in-flight requests keep
// their snapshots.
func (h *Handler) ReplaceBase(base *config.Resolver) {
	h.mu.Lock()
	h.base = base
	h.mu.Unlock()
}

// snapshot returns a request-scoped resolver copy.
func (h *Handler) snapshot() *config.Resolver {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.base.Snapshot()
}

// session bundles the per-request objects every settings endpoint needs.
type session struct {
	resolver *config.Resolver
	manager  *prefs.Manager
	rc       *request.Context
	userID   int64
}

// newSession builds the request pipeline: resolver snapshot, request
// context, preference manager, and the server selection taken from the
// "server" query parameter.
func (h *Handler) newSession(w http.ResponseWriter, r *http.Request) session {
	resolver := h.snapshot()
	effective := resolver.Effective()

	rc := request.New(w, r, request.CookiePolicy{
		Validity: effective.CookieValidity,
		SameSite: effective.CookieSameSite,
	})

	store := h.store
	if store == nil {
		store = prefs.NewCookieStore(rc, h.logger)
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	resolver.SelectServer(r.URL.Query().Get("server"))

	return session{
		resolver: resolver,
		manager:  prefs.NewManager(resolver, store, h.themes, h.langs, h.logger),
		rc:       rc,
		userID:   userID,
	}
}
