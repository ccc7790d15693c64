package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/luach-app/luach-backend/internal/business/events"
	"github.com/luach-app/luach-backend/internal/calendar"
	"github.com/luach-app/luach-backend/internal/database"
	"github.com/luach-app/luach-backend/internal/model"
	"github.com/luach-app/luach-backend/internal/pkg/clock"
	"github.com/luach-app/luach-backend/internal/pkg/oauth"
	"go.uber.org/zap"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader
	clock      clock.Clock

	jwts          jwtManager
	tokenParser   tokenParser
	refreshTokens refreshTokenRepository

	db     database.PGX
	users  userRepository
	events eventsService
}

type jwtManager interface {
	CreateToken(id int64) (string, error)
	GetIdFromToken(token string) (int64, error)
}

type tokenParser interface {
	GetInfoGoogle(ctx context.Context, authCode string) (*oauth.GoogleInfo, error)
}

type refreshTokenRepository interface {
	Add(ctx context.Context, session string, id int64) error
	Get(ctx context.Context, session string) (int64, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
}

type userRepository interface {
	CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (int64, error)
	GetUserByEmail(ctx context.Context, q database.Queryable, email string) (*model.User, error)
	GetUserByID(ctx context.Context, q database.Queryable, id int64) (*model.User, error)
}

type eventsService interface {
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	GetEvents(ctx context.Context) ([]*model.Event, error)
	GetEventByID(ctx context.Context, id int64) (*model.Event, error)
	GetCalendar(ctx context.Context, filter model.EventsFilter) ([]*calendar.Occurrence, error)
	UpdateEvent(ctx context.Context, id int64, info *model.EventCreate) (*model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	ArchiveEvent(ctx context.Context, id int64) (*model.Event, error)
	UnarchiveEvent(ctx context.Context, id int64) (*model.Event, error)
	WeeklyReport(ctx context.Context, start time.Time) ([]*events.DayReport, error)
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	clk clock.Clock,
	jwts jwtManager,
	tokenParser tokenParser,
	refreshTokens refreshTokenRepository,
	db database.PGX,
	users userRepository,
	eventsService eventsService,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		randSource:    randSource,
		clock:         clk,
		jwts:          jwts,
		tokenParser:   tokenParser,
		refreshTokens: refreshTokens,
		db:            db,
		users:         users,
		events:        eventsService,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin/google", a.signInGoogleHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutUserHandler)
	})

	r.Get("/holidays", a.getHolidaysHandler)

	r.With(a.auth).Route("/", func(r chi.Router) {
		r.With(a.userCtx).Get("/user", a.getUserHandler)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", a.getEventsHandler)
			r.Post("/", a.createEventHandler)
			r.Get("/calendar", a.getCalendarHandler)

			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", a.getEventHandler)
				r.Put("/", a.updateEventHandler)
				r.Delete("/", a.deleteEventHandler)
				r.Post("/archive", a.archiveEventHandler)
				r.Post("/unarchive", a.unarchiveEventHandler)
			})
		})

		r.Get("/reports/weekly", a.weeklyReportHandler)
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
