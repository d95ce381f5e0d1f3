package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/telebot.v3"

	_ "github.com/mattn/go-sqlite3"

	"worker-calculator/config"
	"worker-calculator/internal/app/service"
	"worker-calculator/internal/delivery/httpapi"
	"worker-calculator/internal/delivery/telegram"
	"worker-calculator/internal/repository/sqlite"
	"worker-calculator/pkg/calendar"
	"worker-calculator/pkg/workerpool"
)

func main() {
	log.Println("Iniciando Worker Calculator...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error al cargar la configuración: %v", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		log.Fatalf("Error al abrir la base de datos: %v", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Fatalf("Error en la migración: %v", err)
	}

	pool := workerpool.NewWorkerPool(cfg.WorkerCount, cfg.QueueSize)
	defer pool.Close()
	async := service.NewAsyncService(pool)

	workerRepo := sqlite.NewSqliteWorkerRepo(db)
	shiftService := &service.ShiftServiceImpl{
		Repo:    sqlite.NewSqliteShiftRepo(db),
		Workers: workerRepo,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var srv *http.Server
	if cfg.HTTPAddr != "" {
		srv = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           httpapi.NewRouter(httpapi.NewHandler(async)),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			log.Printf("[http] escuchando en %s", cfg.HTTPAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("[http] error del servidor: %v", err)
			}
		}()
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		log.Fatalf("Error al iniciar el bot: %v", err)
	}

	handler := &telegram.Handler{
		Bot:      bot,
		Shifts:   shiftService,
		Workers:  service.NewWorkerService(workerRepo, sqlite.NewSqliteScheduleRepo(db)),
		Async:    async,
		Calendar: &calendar.CalendarController{Bot: bot},
	}
	handler.Register()

	go func() {
		<-ctx.Done()
		log.Println("Deteniendo...")
		bot.Stop()
		if srv != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}
	}()

	log.Println("¡Bot iniciado!")
	bot.Start()
}
