package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/termosaude/backend/internal/api"
	"github.com/termosaude/backend/internal/auth"
	"github.com/termosaude/backend/internal/cache"
	"github.com/termosaude/backend/internal/config"
	"github.com/termosaude/backend/internal/email"
	"github.com/termosaude/backend/internal/middleware"
	"github.com/termosaude/backend/internal/migrate"
	"github.com/termosaude/backend/internal/seed"
	"github.com/termosaude/backend/internal/term"
)

func main() {
	cfg := config.Load()

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("conexão postgres: %v", err)
		}
		if err := migrate.Run(context.Background(), db, "migrations"); err != nil {
			log.Fatalf("migrations: %v", err)
		}
		if err := seed.Run(context.Background(), db); err != nil {
			log.Printf("seed (ignored if already applied): %v", err)
		}
	}

	// Registro de modelos montado uma vez no boot e somente leitura daí em diante
	registry := term.NewRegistry()

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	r.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"no database"}`))
			return
		}
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(r.Context()) != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"db unhealthy"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	}).Methods(http.MethodGet)

	h := &api.Handler{
		DB:       db,
		Cfg:      cfg,
		Cache:    cache.New(30 * time.Second),
		Registry: registry,
		Renderer: term.NewRenderer(registry),
	}
	h.SetHashPassword(auth.HashPassword)

	mailCfg := &email.Config{
		Host:     cfg.SMTPHost,
		Port:     email.PortFromString(cfg.SMTPPort),
		User:     cfg.SMTPUser,
		Pass:     cfg.SMTPPass,
		FromName: cfg.SMTPFromName,
		FromAddr: cfg.SMTPFromEmail,
	}
	mailCfg.LogConfigSummary()
	h.SetSendSignedTermCopyEmail(func(to, name string, pdf []byte, verificationToken string) error {
		verURL := cfg.AppPublicURL + "/termos/verificar/" + verificationToken
		subject := "Termo de consentimento assinado - Termo Saúde"
		if len(pdf) == 0 {
			// geração do PDF falhou: o termo vale, o paciente recebe ao menos o link
			body := "Olá, " + name + ",\n\nSeu termo de consentimento foi assinado.\nLink para verificação: " + verURL
			return mailCfg.Send(to, subject, body)
		}
		body := "Olá, " + name + ",\n\nSegue em anexo a cópia do termo de consentimento assinado.\nLink para verificação: " + verURL
		return mailCfg.SendWithAttachment(to, subject, body, "termo-assinado.pdf", pdf)
	})

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	apiRouter.Handle("/terms/verify/{token}", middleware.OptionalAuth(cfg.JWTSecret, http.HandlerFunc(h.GetTermVerify))).Methods(http.MethodGet)

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.RequireAuthMiddleware(cfg.JWTSecret))
	protected.Handle("/term-templates", middleware.RequireRole(auth.RoleProfessional, auth.RoleSuperAdmin)(http.HandlerFunc(h.ListTermTemplates))).Methods(http.MethodGet)
	protected.Handle("/patients", middleware.RequireRole(auth.RoleProfessional, auth.RoleSuperAdmin)(http.HandlerFunc(h.ListPatients))).Methods(http.MethodGet)
	protected.Handle("/patients", middleware.RequireRole(auth.RoleProfessional, auth.RoleSuperAdmin)(http.HandlerFunc(h.CreatePatient))).Methods(http.MethodPost)
	protected.Handle("/patients/{patientId}", middleware.RequireRole(auth.RoleProfessional, auth.RoleSuperAdmin)(http.HandlerFunc(h.GetPatient))).Methods(http.MethodGet)
	protected.Handle("/patients/{patientId}", middleware.RequireRole(auth.RoleProfessional, auth.RoleSuperAdmin)(http.HandlerFunc(h.UpdatePatient))).Methods(http.MethodPatch)
	protected.Handle("/patients/{patientId}", middleware.RequireRole(auth.RoleProfessional, auth.RoleSuperAdmin)(http.HandlerFunc(h.SoftDeletePatient))).Methods(http.MethodDelete)
	protected.Handle("/patients/{patientId}/terms", middleware.RequireRole(auth.RoleProfessional)(http.HandlerFunc(h.ListPatientTerms))).Methods(http.MethodGet)
	protected.Handle("/patients/{patientId}/terms", middleware.RequireRole(auth.RoleProfessional)(http.HandlerFunc(h.SignTerm))).Methods(http.MethodPost)
	protected.Handle("/patients/{patientId}/term-preview", middleware.RequireRole(auth.RoleProfessional)(http.HandlerFunc(h.GetTermPreview))).Methods(http.MethodGet)
	protected.Handle("/terms/{termId}", middleware.RequireRole(auth.RoleProfessional, auth.RoleSuperAdmin)(http.HandlerFunc(h.GetSignedTerm))).Methods(http.MethodGet)
	protected.Handle("/terms/{termId}/pdf", middleware.RequireRole(auth.RoleProfessional, auth.RoleSuperAdmin)(http.HandlerFunc(h.GetSignedTermPDF))).Methods(http.MethodGet)
	protected.Handle("/me/password", middleware.RequireRole(auth.RoleProfessional)(http.HandlerFunc(h.PutMyPassword))).Methods(http.MethodPut)
	protected.Handle("/me/signature", middleware.RequireRole(auth.RoleProfessional)(http.HandlerFunc(h.GetMySignature))).Methods(http.MethodGet)
	protected.Handle("/me/signature", middleware.RequireRole(auth.RoleProfessional)(http.HandlerFunc(h.PutMySignature))).Methods(http.MethodPut)

	chain := middleware.Recover(middleware.RequestID(middleware.Timeout(cfg.RequestTimeoutSec)(middleware.CORS(cfg.CORSOrigins)(middleware.Gzip(r)))))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      chain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("backend listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("backend stopped")
}
