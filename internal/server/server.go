package server

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"strconv"

	"github.com/eskrenkovic/session-management-go/internal/config"
	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	sessioncommands "github.com/eskrenkovic/session-management-go/internal/modules/session/commands"
	sessiondomain "github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	sessionqueries "github.com/eskrenkovic/session-management-go/internal/modules/session/queries"
	sessionstore "github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/migrate-go"
	"github.com/go-chi/chi"
	_ "github.com/lib/pq"
)

type Server interface {
	Start() error
	Stop() error
}

var _ Server = &HTTPServer{}

// HTTPServer acts as the composition root for the application.
type HTTPServer struct {
	server *http.Server
}

func NewHTTPServer(config config.Config) (Server, error) {
	baseCtx := context.Background()

	db, err := sql.Open("postgres", config.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := migrate.Run(baseCtx, db, config.MigrationsPath); err != nil {
		return nil, err
	}

	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: config.Logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: config.Logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	store := sessionstore.NewPostgresStore(db)
	clock := &core.DefaultClock{}

	if err := registerCommandHandlers(store, clock); err != nil {
		return nil, err
	}

	if err := registerQueryHandlers(store); err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(core.CorrelationIDHTTPMiddleware)

	r.Route("/session", func(r chi.Router) {
		r.Get("/status", sessionqueries.HandleServiceStatus)

		r.Route("/create", func(r chi.Router) {
			r.Post("/quick", sessioncommands.HandleCreateQuickSession)
			r.Post("/private", sessioncommands.HandleCreatePrivateSession)
			r.Post("/schedule", sessioncommands.HandleCreateScheduledSession)
			r.Post("/group", sessioncommands.HandleCreateGroupSession)
			r.Post("/test", sessioncommands.HandleCreateTestSession)
			r.Post("/set-rules", sessioncommands.HandleSetSessionRules)
			r.Post("/set-challenges", sessioncommands.HandleSetSessionChallenges)
		})

		r.Route("/activate", func(r chi.Router) {
			r.Post("/user/{id}", sessioncommands.HandleJoinSession)
			r.Post("/time/{id}", sessioncommands.HandleSetSchedule)
			r.Post("/challenge/{id}", sessioncommands.HandleAssignChallenge)
		})

		r.Route("/existing", func(r chi.Router) {
			r.Get("/", sessionqueries.HandleListSessions)
			r.Get("/open", sessionqueries.HandleListOpenSessions)
			r.Get("/nearby", sessionqueries.HandleListNearbySessions)
			r.Get("/private", sessionqueries.HandleListPrivateSessions)
			r.Get("/completed", sessionqueries.HandleListCompletedSessions)
			r.Get("/popular", sessionqueries.HandleListPopularSessions)
			r.Get("/recently-updated", sessionqueries.HandleListRecentlyUpdatedSessions)
			r.Get("/joinable", sessionqueries.HandleListJoinableSessions)
			r.Get("/category/{type}", sessionqueries.HandleListSessionsByCategory)
		})

		r.Route("/{id}", func(r chi.Router) {
			r.Post("/activate", sessioncommands.HandleActivateSession)
			r.Post("/pause", sessioncommands.HandlePauseSession)
			r.Post("/complete", sessioncommands.HandleCompleteSession)
			r.Post("/cancel", sessioncommands.HandleCancelSession)
			r.Post("/leave", sessioncommands.HandleLeaveSession)
			r.Post("/view", sessioncommands.HandleRecordView)

			r.Get("/details", sessionqueries.HandleGetSessionDetails)
			r.Get("/participants", sessionqueries.HandleGetParticipants)
			r.Get("/logs", sessionqueries.HandleGetLogs)
			r.Get("/challenges", sessionqueries.HandleGetChallenges)
			r.Get("/rules", sessionqueries.HandleGetRules)
			r.Get("/location", sessionqueries.HandleGetLocation)
			r.Get("/owner", sessionqueries.HandleGetOwner)
			r.Get("/created", sessionqueries.HandleGetCreatedAt)
		})
	})

	server := http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(config.Port)),
		Handler: r,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}

	return &HTTPServer{server: &server}, nil
}

func registerCommandHandlers(store sessionstore.SessionStore, clock core.Clock) error {
	err := mediator.RegisterRequestHandler[sessioncommands.CreateQuickSessionCommand, sessiondomain.SessionDetails](
		sessioncommands.NewCreateQuickSessionCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.CreatePrivateSessionCommand, sessiondomain.SessionDetails](
		sessioncommands.NewCreatePrivateSessionCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.CreateScheduledSessionCommand, sessiondomain.SessionDetails](
		sessioncommands.NewCreateScheduledSessionCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.CreateGroupSessionCommand, sessiondomain.SessionDetails](
		sessioncommands.NewCreateGroupSessionCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.CreateTestSessionCommand, sessiondomain.SessionDetails](
		sessioncommands.NewCreateTestSessionCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.ActivateSessionCommand, sessiondomain.SessionDetails](
		sessioncommands.NewActivateSessionCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.PauseSessionCommand, sessiondomain.SessionDetails](
		sessioncommands.NewPauseSessionCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.CompleteSessionCommand, sessiondomain.SessionDetails](
		sessioncommands.NewCompleteSessionCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.CancelSessionCommand, sessiondomain.SessionDetails](
		sessioncommands.NewCancelSessionCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.SetScheduleCommand, sessiondomain.SessionDetails](
		sessioncommands.NewSetScheduleCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.JoinSessionCommand, sessioncommands.JoinSessionResponse](
		sessioncommands.NewJoinSessionCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.LeaveSessionCommand, core.Unit](
		sessioncommands.NewLeaveSessionCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.SetSessionRulesCommand, sessioncommands.SetSessionRulesResponse](
		sessioncommands.NewSetSessionRulesCommandHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.SetSessionChallengesCommand, sessioncommands.SetSessionChallengesResponse](
		sessioncommands.NewSetSessionChallengesCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.AssignChallengeCommand, core.Unit](
		sessioncommands.NewAssignChallengeCommandHandler(store, clock),
	)
	if err != nil {
		return err
	}

	return mediator.RegisterRequestHandler[sessioncommands.RecordViewCommand, core.Unit](
		sessioncommands.NewRecordViewCommandHandler(store),
	)
}

func registerQueryHandlers(store sessionstore.SessionStore) error {
	err := mediator.RegisterRequestHandler[sessionqueries.GetSessionDetailsQuery, sessiondomain.SessionDetails](
		sessionqueries.NewGetSessionDetailsQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.GetParticipantsQuery, sessionqueries.GetParticipantsResponse](
		sessionqueries.NewGetParticipantsQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.GetLogsQuery, sessionqueries.GetLogsResponse](
		sessionqueries.NewGetLogsQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.GetChallengesQuery, sessionqueries.GetChallengesResponse](
		sessionqueries.NewGetChallengesQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.GetRulesQuery, sessionqueries.GetRulesResponse](
		sessionqueries.NewGetRulesQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.GetLocationQuery, sessionqueries.GetLocationResponse](
		sessionqueries.NewGetLocationQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.GetOwnerQuery, sessionqueries.GetOwnerResponse](
		sessionqueries.NewGetOwnerQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.GetCreatedAtQuery, sessionqueries.GetCreatedAtResponse](
		sessionqueries.NewGetCreatedAtQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.ListSessionsQuery, sessionqueries.SessionListResponse](
		sessionqueries.NewListSessionsQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.ListOpenSessionsQuery, sessionqueries.SessionListResponse](
		sessionqueries.NewListOpenSessionsQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.ListNearbySessionsQuery, sessionqueries.NearbySessionsResponse](
		sessionqueries.NewListNearbySessionsQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.ListPrivateSessionsQuery, sessionqueries.SessionListResponse](
		sessionqueries.NewListPrivateSessionsQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.ListCompletedSessionsQuery, sessionqueries.SessionListResponse](
		sessionqueries.NewListCompletedSessionsQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.ListPopularSessionsQuery, sessionqueries.SessionListResponse](
		sessionqueries.NewListPopularSessionsQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.ListRecentlyUpdatedSessionsQuery, sessionqueries.SessionListResponse](
		sessionqueries.NewListRecentlyUpdatedSessionsQueryHandler(store),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.ListJoinableSessionsQuery, sessionqueries.JoinableSessionsResponse](
		sessionqueries.NewListJoinableSessionsQueryHandler(store),
	)
	if err != nil {
		return err
	}

	return mediator.RegisterRequestHandler[sessionqueries.ListSessionsByCategoryQuery, sessionqueries.SessionListResponse](
		sessionqueries.NewListSessionsByCategoryQueryHandler(store),
	)
}

func (s *HTTPServer) Start() error {
	if err := s.server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	return s.server.Close()
}
