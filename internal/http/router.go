package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/f5tci/diarios-api/internal/agenda"
	"github.com/f5tci/diarios-api/internal/auth"
	"github.com/f5tci/diarios-api/internal/catalogo"
	"github.com/f5tci/diarios-api/internal/config"
	httpmiddleware "github.com/f5tci/diarios-api/internal/http/middleware"
	"github.com/f5tci/diarios-api/internal/preset"
	"github.com/f5tci/diarios-api/internal/projeto"
	"github.com/f5tci/diarios-api/internal/repo"
	"github.com/f5tci/diarios-api/internal/tarefa"
	"github.com/f5tci/diarios-api/internal/usuario"
)

// Handler reúne as dependências partilhadas pelas rotas de topo.
type Handler struct {
	cfg           *config.Config
	db            *mongo.Database
	jwt           *auth.JWTManager
	usuarios      *usuario.Service
	publicLimiter *httpmiddleware.RateLimiter
	authLimiter   *httpmiddleware.RateLimiter
}

// NewRouter devolve o roteador configurado com todos os módulos montados.
func NewRouter(cfg *config.Config, db *mongo.Database) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTTL)

	usuarioRepo := usuario.NewRepository(db)
	usuarioService := usuario.NewService(usuarioRepo)
	usuarioHandler := usuario.NewHandler(usuarioService)

	catalogoRepo := catalogo.NewRepository(db)
	catalogoHandler := catalogo.NewHandler(catalogoRepo)

	agendaRepo := agenda.NewRepository(db)
	agendaHandler := agenda.NewHandler(agendaRepo)

	tarefaRepo := tarefa.NewRepository(db)
	tarefaService := tarefa.NewService(tarefaRepo)
	tarefaHandler := tarefa.NewHandler(tarefaService)

	presetRepo := preset.NewRepository(db)
	presetService := preset.NewService(presetRepo)
	presetHandler := preset.NewHandler(presetService)

	projetoRepo := projeto.NewRepository(db)
	projetoService := projeto.NewService(projetoRepo, tarefaRepo)
	projetoHandler := projeto.NewHandler(projetoService)

	// O canal bearer vale em toda a API privada. A chave de serviço só é
	// reconhecida nas rotas de tarefas e resolve primeiro.
	bearerChain := auth.Chain{auth.NewBearerResolver(jwtManager)}
	tarefaChain := bearerChain
	if cfg.ServiceChannelEnabled() {
		tarefaChain = auth.Chain{
			auth.NewServiceKeyResolver(cfg.APIKey, usuarioService, repo.ErrNotFound),
			auth.NewBearerResolver(jwtManager),
		}
	}

	h := &Handler{
		cfg:           cfg,
		db:            db,
		jwt:           jwtManager,
		usuarios:      usuarioService,
		publicLimiter: httpmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst),
		authLimiter:   httpmiddleware.NewRateLimiter(cfg.RateLimitAuth.RequestsPerSecond, cfg.RateLimitAuth.Burst),
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.CORS(cfg.AllowOrigins))

	r.Group(func(public chi.Router) {
		public.Use(httpmiddleware.IPRateLimit(h.publicLimiter))

		public.Get("/health", h.Health)
		public.Get("/ready", h.Ready)

		public.Route("/auth", func(authRouter chi.Router) {
			authRouter.Post("/register", h.Register)
			authRouter.Post("/login", h.Login)
			authRouter.Post("/refresh", h.Refresh)
		})
	})

	r.Group(func(private chi.Router) {
		private.Use(httpmiddleware.Auth(bearerChain))
		private.Use(httpmiddleware.UserRateLimit(h.authLimiter))

		private.Get("/me", h.Me)
		usuario.Mount(private, usuarioHandler)
		catalogo.Mount(private, catalogoHandler)
		agenda.Mount(private, agendaHandler)
		preset.Mount(private, presetHandler)
		projeto.Mount(private, projetoHandler)
	})

	r.Group(func(tasks chi.Router) {
		tasks.Use(httpmiddleware.Auth(tarefaChain))
		tasks.Use(httpmiddleware.UserRateLimit(h.authLimiter))

		tarefa.Mount(tasks, tarefaHandler)
	})

	return r
}

// Health responde status simples.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready valida a conexão com o MongoDB.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Client().Ping(ctx, nil); err != nil {
		writeError(w, http.StatusServiceUnavailable, "INTERNAL", "dependências indisponíveis", map[string]any{
			"db": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ready": true})
}
