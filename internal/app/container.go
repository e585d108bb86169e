package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/salareserva/room-reservation-backend/internal/api"
	"github.com/salareserva/room-reservation-backend/internal/lifecycle"
	"github.com/salareserva/room-reservation-backend/internal/memstore"
	"github.com/salareserva/room-reservation-backend/internal/notification"
	"github.com/salareserva/room-reservation-backend/internal/pkg/clock"
	"github.com/salareserva/room-reservation-backend/internal/reservation"
	"github.com/salareserva/room-reservation-backend/internal/room"
	"github.com/salareserva/room-reservation-backend/internal/user"
)

// Repositories is the storage the application runs on.
type Repositories struct {
	Users         user.Repository
	Rooms         room.Repository
	Reservations  reservation.Repository
	Notifications notification.Repository
}

// PgxRepositories builds the Postgres-backed repositories.
func PgxRepositories(pool *pgxpool.Pool, log logrus.FieldLogger) Repositories {
	return Repositories{
		Users:         user.NewPgxRepository(pool),
		Rooms:         room.NewPgxRepository(pool, log),
		Reservations:  reservation.NewPgxRepository(pool),
		Notifications: notification.NewPgxRepository(pool),
	}
}

// MemoryRepositories exposes an in-memory store as Repositories. Tests use it
// to run the full router without a database.
func MemoryRepositories(store *memstore.Store) Repositories {
	return Repositories{
		Users:         store.Users(),
		Rooms:         store.Rooms(),
		Reservations:  store.Reservations(),
		Notifications: store.Notifications(),
	}
}

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Location     *time.Location
	Clock        clock.Clock
	Logger       logrus.FieldLogger
	Repos        Repositories
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router  *gin.Engine
	Sweeper *lifecycle.Sweeper

	Reservations  reservation.Service
	Notifications notification.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.System()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	// User Module
	userService := user.NewService(cfg.Repos.Users)

	// Room Module
	roomService := room.NewService(cfg.Repos.Rooms)

	// Notification Module
	notifService := notification.NewService(cfg.Repos.Notifications, cfg.Location, cfg.Logger)

	// Reservation Module
	reservationService := reservation.NewService(reservation.Deps{
		Repo:     cfg.Repos.Reservations,
		Users:    userService,
		Rooms:    roomService,
		Notifier: notifService,
		Clock:    cfg.Clock,
		Location: cfg.Location,
		Logger:   cfg.Logger,
	})

	// Lifecycle Module
	sweeper := lifecycle.NewSweeper(cfg.Repos.Reservations, notifService, cfg.Clock, cfg.Location, cfg.Logger)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		Logger:       cfg.Logger,
		UserService:  userService,
		RoomService:  roomService,
		ResService:   reservationService,
		NotifService: notifService,
		Sweeper:      sweeper,
	})

	return &Container{
		Router:        router,
		Sweeper:       sweeper,
		Reservations:  reservationService,
		Notifications: notifService,
	}
}
