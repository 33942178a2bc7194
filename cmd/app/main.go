package main

import (
	"fmt"
	"os"

	"github.com/WWStoryMode/project-firefly/cmd"
	httpadapter "github.com/WWStoryMode/project-firefly/internal/adapters/in/http"
	"github.com/WWStoryMode/project-firefly/internal/adapters/out/postgres/assignmentrepo"
	"github.com/WWStoryMode/project-firefly/internal/adapters/out/postgres/orderrepo"
	"github.com/WWStoryMode/project-firefly/internal/adapters/out/postgres/partyrepo"
	"github.com/WWStoryMode/project-firefly/internal/adapters/out/postgres/personrepo"
	"github.com/WWStoryMode/project-firefly/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		MatchingRetrySchedule: goDotEnvVariable("MATCHING_RETRY_SCHEDULE"),
	}
	if config.MatchingRetrySchedule == "" {
		config.MatchingRetrySchedule = "*/5 * * * * *"
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&assignmentrepo.AssignmentDTO{},
		&personrepo.PersonDTO{},
		&partyrepo.VendorDTO{},
		&partyrepo.CustomerDTO{},
	)
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	jobManager := jobs.NewJobManager(
		app.CreateOrderUoWFactory(),
		app.CreateMatchDeliveryCommandHandler(),
		configs.MatchingRetrySchedule,
		app.Logger(),
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateTransitionAssignmentCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListAssignmentsQueryHandler(),
		app.CreateGetAssignmentQueryHandler(),
		app.Logger(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
