package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gorilla/mux"

	"github.com/epicevents/api-crm/internal/auth"
	"github.com/epicevents/api-crm/internal/cargo"
	"github.com/epicevents/api-crm/internal/cliente"
	"github.com/epicevents/api-crm/internal/colaborador"
	"github.com/epicevents/api-crm/internal/contrato"
	"github.com/epicevents/api-crm/internal/evento"
	"github.com/epicevents/api-crm/internal/notificacao"
	"github.com/epicevents/api-crm/internal/utils"
	"github.com/epicevents/api-crm/internal/utils/db"
)

func main() {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET não definida")
	}

	tokenTTL := auth.TTLPadrao
	if minutos, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES")); err == nil && minutos > 0 {
		tokenTTL = time.Duration(minutos) * time.Minute
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&cargo.Cargo{},
		&colaborador.Colaborador{},
		&cliente.Cliente{},
		&contrato.Contrato{},
		&evento.Evento{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	var notificador notificacao.Notificador = notificacao.NovoLogNotificador(logger)
	if url := os.Getenv("WEBHOOK_URL"); url != "" {
		notificador = notificacao.Multi{
			notificacao.NovoLogNotificador(logger),
			notificacao.NovoWebhookNotificador(url),
		}
	}

	if err := bootstrap(database, logger); err != nil {
		log.Fatal("Erro na inicialização:", err)
	}

	// Handlers
	cargoHandler := cargo.NewHandler(database)
	colaboradorHandler := colaborador.NewHandler(database, notificador, []byte(secret), tokenTTL)
	clienteHandler := cliente.NewHandler(database)
	contratoHandler := contrato.NewHandler(database, notificador)
	eventoHandler := evento.NewHandler(database)

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/login", colaboradorHandler.Login).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao([]byte(secret)))

	// Rotas de cargos
	api.HandleFunc("/cargos", cargoHandler.ListarCargos).Methods("GET")

	// Rotas de colaboradores
	api.HandleFunc("/colaboradores", colaboradorHandler.Criar).Methods("POST")
	api.HandleFunc("/colaboradores", colaboradorHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/colaboradores/{id}", colaboradorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/colaboradores/{id}", colaboradorHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/colaboradores/{id}", colaboradorHandler.Deletar).Methods("DELETE")

	// Rotas de clientes
	api.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/clientes/meus", clienteHandler.ListarMeus).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")

	// Rotas de contratos
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")

	// Rotas de eventos
	api.HandleFunc("/eventos", eventoHandler.Criar).Methods("POST")
	api.HandleFunc("/eventos", eventoHandler.Listar).Methods("GET")
	api.HandleFunc("/eventos/{id}", eventoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/eventos/{id}", eventoHandler.Atualizar).Methods("PUT")

	handler := cors.AllowAll().Handler(r)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logger.Info().Str("addr", addr).Msg("servidor no ar")
	log.Fatal(http.ListenAndServe(addr, handler))
}

// bootstrap garante os três cargos canônicos e um primeiro colaborador de
// gestão, sem o qual ninguém conseguiria criar os demais.
func bootstrap(database *gorm.DB, logger zerolog.Logger) error {
	cargoService := cargo.NewService(database)
	if err := cargoService.GarantirCargosPadrao(); err != nil {
		return err
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminSenha := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminSenha == "" {
		return nil
	}

	repo := colaborador.NewRepository()
	if _, err := repo.BuscarPorEmail(database, adminEmail); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	gestao, err := cargoService.BuscarPorNome("management")
	if err != nil {
		return err
	}

	hash, err := utils.HashSenha(adminSenha)
	if err != nil {
		return err
	}

	admin := colaborador.Colaborador{
		Nome:    "Admin",
		Email:   adminEmail,
		Senha:   hash,
		CargoID: gestao.ID,
	}
	if err := repo.Criar(database, &admin); err != nil {
		return err
	}
	logger.Info().Str("email", adminEmail).Msg("colaborador de gestão inicial criado")
	return nil
}
