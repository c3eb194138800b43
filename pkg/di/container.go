package di

import (
	"fmt"

	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"taskboard/application/serviceimpl"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/infrastructure/dynamo"
	"taskboard/infrastructure/messaging"
	natspkg "taskboard/infrastructure/nats"
	redispkg "taskboard/infrastructure/redis"
	"taskboard/interfaces/api/handlers"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
)

type Container struct {
	Config *config.Config

	// Infrastructure
	DynamoClient *awsdynamodb.Client
	RedisClient  *redispkg.Client // nil when rate limiting is disabled
	NATSClient   *natspkg.Client  // nil when no broker is configured

	// Repositories
	TaskRepository repositories.TaskRepository

	// Messaging
	TaskEventPublisher ports.TaskEventPublisherPort

	// Services
	TaskService services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	logger.Info("Container initialized")
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	dynamoClient, err := dynamo.NewClient(&c.Config.Dynamo)
	if err != nil {
		return fmt.Errorf("failed to init DynamoDB client: %w", err)
	}
	c.DynamoClient = dynamoClient

	// Redis and NATS are optional collaborators: losing them costs rate
	// limiting and event publishing, not task operations.
	if c.Config.RateLimit.Enabled && c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, rate limiting disabled", "error", err)
		} else {
			c.RedisClient = redisClient
		}
	}

	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS unavailable, task events disabled", "error", err)
		} else {
			c.NATSClient = natsClient
			c.TaskEventPublisher = messaging.NewNATSTaskEventPublisher(natsClient.Conn())
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	c.TaskRepository = dynamo.NewTaskRepository(c.DynamoClient, &c.Config.Dynamo)
}

func (c *Container) initServices() {
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.TaskEventPublisher, c.Config.Dynamo.UseOwnerIndex)
}

// GetHandlerServices bundles the services the HTTP handlers consume.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService: c.TaskService,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.NATSClient != nil {
		c.NATSClient.Close()
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return err
		}
	}
	return nil
}
