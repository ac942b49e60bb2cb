package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/iam/auth"
	"github.com/Abraxas-365/talentpool/pkg/logx"
	"github.com/Abraxas-365/talentpool/talentpool/candidate/candidateapi"
	"github.com/Abraxas-365/talentpool/talentpool/candidate/candidateinfra"
	"github.com/Abraxas-365/talentpool/talentpool/candidate/candidatesrv"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest/introrequestapi"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest/introrequestinfra"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest/introrequestsrv"
	"github.com/Abraxas-365/talentpool/talentpool/notification"
	"github.com/Abraxas-365/talentpool/talentpool/notification/notificationinfra"
	"github.com/Abraxas-365/talentpool/talentpool/notification/worker"
	"github.com/Abraxas-365/talentpool/talentpool/shortlist/shortlistapi"
	"github.com/Abraxas-365/talentpool/talentpool/shortlist/shortlistinfra"
	"github.com/Abraxas-365/talentpool/talentpool/shortlist/shortlistsrv"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const notificationQueueName = "talentpool:notifications"

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Services
	TokenService        auth.TokenService
	CandidateService    *candidatesrv.CandidateService
	ShortlistService    *shortlistsrv.ShortlistService
	IntroRequestService *introrequestsrv.IntroRequestService

	// Notifications
	NotificationQueue  notification.Queue
	NotificationWorker *worker.Worker

	// API Handlers
	CandidateHandlers    *candidateapi.Handlers
	ShortlistHandlers    *shortlistapi.Handlers
	IntroRequestHandlers *introrequestapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. Token verification. Tokens are minted by the identity provider; this
	// service only needs the shared secret to verify them.
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "talentpool"
	}
	c.TokenService = auth.NewJWTService(jwtSecret, jwtIssuer)
}

func (c *Container) initServices() {
	// --- Repositories ---
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	shortlistRepo := shortlistinfra.NewPostgresShortlistRepository(c.DB)
	introRequestRepo := introrequestinfra.NewPostgresIntroRequestRepository(c.DB)

	// --- Infrastructure Services ---
	candidateCache := candidateinfra.NewRedisCandidateCache(c.Redis)
	c.NotificationQueue = notificationinfra.NewRedisQueue(c.Redis, notificationQueueName)

	// --- Domain Services ---
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo, candidateCache)
	c.ShortlistService = shortlistsrv.NewShortlistService(shortlistRepo, candidateRepo)
	c.IntroRequestService = introrequestsrv.NewIntroRequestService(
		introRequestRepo,
		candidateRepo,
		c.NotificationQueue,
	)

	// --- Notification Worker ---
	c.NotificationWorker = worker.New(c.NotificationQueue, notificationinfra.NewLogNotifier())

	// --- Handlers ---
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.ShortlistHandlers = shortlistapi.NewHandlers(c.ShortlistService)
	c.IntroRequestHandlers = introrequestapi.NewHandlers(c.IntroRequestService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService)
}
