package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/salareserva/room-reservation-backend/internal/app"
	"github.com/salareserva/room-reservation-backend/internal/memstore"
	"github.com/salareserva/room-reservation-backend/internal/pkg/clock"
	"github.com/salareserva/room-reservation-backend/internal/room"
	"github.com/salareserva/room-reservation-backend/internal/user"
)

// testNow is a Monday morning; "today" for every scenario is 2025-06-09.
var testNow = time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)

type testApp struct {
	router *gin.Engine
	store  *memstore.Store
	clock  *clock.Fixed
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestApp wires the full application on an in-memory store seeded with two
// users and two rooms.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	clk := clock.NewFixed(testNow)
	store := memstore.New(clk)
	store.AddUser(user.User{Matricula: 1001, Name: "Ana Souza", Ramal: "2001", Sector: "TI"})
	store.AddUser(user.User{Matricula: 1002, Name: "Bruno Lima", Ramal: "2002", Sector: "RH"})
	store.AddRoom(room.Room{
		Name:        "Sala A",
		Capacity:    8,
		IsAvailable: true,
		Resources:   []room.Resource{{Name: "Projetor", Quantity: 1}, {Name: "TV", Quantity: 1}},
	})
	store.AddRoom(room.Room{Name: "Sala B", Capacity: 4, IsAvailable: false})

	log := logrus.New()
	log.SetOutput(io.Discard)

	container := app.NewContainer(app.Config{
		Location: time.UTC,
		Clock:    clk,
		Logger:   log,
		Repos:    app.MemoryRepositories(store),
	})

	return &testApp{router: container.Router, store: store, clock: clk}
}

func (a *testApp) executeRequest(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}
