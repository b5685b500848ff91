package bootstrap

import (
	"context"
	"log"
	"time"

	"astro-observer/internal/config"
	"astro-observer/internal/controller"
	"astro-observer/internal/pkg/logger"
	"astro-observer/internal/pkg/mailer"
	"astro-observer/internal/repository/memory"
	"astro-observer/internal/repository/unitofwork"
	"astro-observer/internal/service"
	"astro-observer/pkg/astrometry"
	"astro-observer/pkg/llm/factory"
	"astro-observer/pkg/vision"

	pktNats "astro-observer/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const usageTopic = "assistant.usage"

type Container struct {
	// Controllers
	AuthController          controller.IAuthController
	UserController          controller.IUserController
	GalaxyController        controller.IGalaxyController
	ConstellationController controller.IConstellationController
	PositioningController   controller.IPositioningController
	HomepageController      controller.IHomepageController
	AssistantController     controller.IAssistantController
	SpaceEngineController   controller.ISpaceEngineController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. Remote inference clients
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.BaseURL,
		cfg.Keys.DeepSeek,
		cfg.Ai.Model,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	classifier := vision.NewHTTPClassifier(cfg.Vision.ClassifierURL)
	detector := vision.NewRoboflowDetector(
		cfg.Keys.Roboflow,
		cfg.Vision.DetectorModelID,
		cfg.Vision.DetectorOverlap,
		cfg.Vision.DetectorMinConfidence,
	)
	solver := astrometry.NewClient(
		cfg.Solver.BaseURL,
		cfg.Keys.Astrometry,
		time.Duration(cfg.Solver.PollInterval)*time.Second,
		time.Duration(cfg.Solver.MaxWait)*time.Second,
	)

	// In-memory conversation window for the assistant
	conversationRepo := memory.NewConversationRepository(10)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, usageTopic)
	consumerService := service.NewConsumerService(pubSub, usageTopic, uowFactory)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, sysLogger)
	userService := service.NewUserService(uowFactory)
	galaxyService := service.NewGalaxyService(uowFactory, classifier, natsPub, sysLogger)
	constellationService := service.NewConstellationService(uowFactory, detector, natsPub, sysLogger)
	positioningService := service.NewPositioningService(uowFactory, solver, natsPub, sysLogger)
	homepageService := service.NewHomepageService(uowFactory, rdb)
	assistantService := service.NewAssistantService(uowFactory, llmProvider, conversationRepo, publisherService, sysLogger)
	spaceEngineService := service.NewSpaceEngineService(uowFactory)

	// 5. Controllers
	return &Container{
		AuthController:          controller.NewAuthController(authService),
		UserController:          controller.NewUserController(userService),
		GalaxyController:        controller.NewGalaxyController(galaxyService, cfg.App.UploadDir),
		ConstellationController: controller.NewConstellationController(constellationService, cfg.App.UploadDir),
		PositioningController:   controller.NewPositioningController(positioningService, cfg.App.UploadDir),
		HomepageController:      controller.NewHomepageController(homepageService),
		AssistantController:     controller.NewAssistantController(assistantService),
		SpaceEngineController:   controller.NewSpaceEngineController(spaceEngineService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
