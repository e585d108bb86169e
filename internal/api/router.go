package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/salareserva/room-reservation-backend/internal/lifecycle"
	lifecycleHttp "github.com/salareserva/room-reservation-backend/internal/lifecycle/http"
	"github.com/salareserva/room-reservation-backend/internal/logger"
	"github.com/salareserva/room-reservation-backend/internal/notification"
	notifHttp "github.com/salareserva/room-reservation-backend/internal/notification/http"
	"github.com/salareserva/room-reservation-backend/internal/reservation"
	reservationHttp "github.com/salareserva/room-reservation-backend/internal/reservation/http"
	"github.com/salareserva/room-reservation-backend/internal/room"
	roomHttp "github.com/salareserva/room-reservation-backend/internal/room/http"
	"github.com/salareserva/room-reservation-backend/internal/user"
	userHttp "github.com/salareserva/room-reservation-backend/internal/user/http"
)

// Config holds the services the router exposes.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       logrus.FieldLogger

	UserService  user.Service
	RoomService  room.Service
	ResService   reservation.Service
	NotifService notification.Service
	Sweeper      *lifecycle.Sweeper
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Recovery) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs every request through logrus with a request id.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(logger.GinMiddleware(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	config := cors.DefaultConfig()
	if cfg.IsProduction {
		config.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	if !config.AllowAllOrigins && len(config.AllowOrigins) == 0 {
		cfg.Logger.Warn("PROD_ORIGINS is empty, cross-origin requests will be rejected")
	} else {
		r.Use(cors.New(config))
	}

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	reservationHandler := reservationHttp.NewHandler(cfg.ResService)
	notifHandler := notifHttp.NewHandler(cfg.NotifService)
	lifecycleHandler := lifecycleHttp.NewHandler(cfg.Sweeper)

	root := r.Group("/")
	{
		userHttp.RegisterRoutes(root, userHandler)
		roomHttp.RegisterRoutes(root, roomHandler)
		reservationHttp.RegisterRoutes(root, reservationHandler)
		notifHttp.RegisterRoutes(root, notifHandler)
		lifecycleHttp.RegisterRoutes(root, lifecycleHandler)
	}

	return r
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
