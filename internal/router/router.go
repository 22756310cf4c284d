package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"pets-users-service/internal/adapters/hashing"
	mem "pets-users-service/internal/adapters/storage/memory"
	pg "pets-users-service/internal/adapters/storage/postgres"
	"pets-users-service/internal/domain/pets"
	"pets-users-service/internal/domain/users"
	"pets-users-service/internal/middleware"
	"pets-users-service/internal/platform/logger"
	"pets-users-service/internal/ports/password"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN y cae a in-memory.
	DB *sql.DB

	// Opcional: hasher alternativo (tests). Default: bcrypt.
	Hasher password.Hasher

	Log logger.Logger
}

// NewRouter es el composition root: acá se construyen los stores y se
// inyectan en los services. Ningún use case toca estado global.
func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		petRepo  pets.Repository
		userRepo users.Repository
	)

	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Warn("postgres open failed, falling back to in-memory", map[string]any{
					"error": err.Error(),
				})
			} else {
				db = opened
			}
		}
	}

	if db != nil {
		petRepo = pg.NewPetsRepo(db)
		userRepo = pg.NewUsersRepo(db)
		log.Info("storage: postgres", nil)
	} else {
		petRepo = mem.NewPetRepo()
		userRepo = mem.NewUserRepo()
		log.Info("storage: in-memory", nil)
	}

	hasher := opts.Hasher
	if hasher == nil {
		hasher = hashing.NewBcrypt()
	}

	// El token store es memoria de proceso aun con Postgres detrás:
	// los tokens no sobreviven reinicios.
	petsSvc := pets.NewService(petRepo)
	usersSvc := users.NewService(userRepo, hasher, users.NewTokenStore())

	pets.RegisterRoutes(r, petsSvc)
	users.RegisterRoutes(r, usersSvc)

	return r
}
