package router

import (
	"github.com/devasif/smart-task-management/internal/application"
	"github.com/devasif/smart-task-management/internal/container"
	"github.com/devasif/smart-task-management/internal/infrastructure/mongodb"
	handlers "github.com/devasif/smart-task-management/internal/interface/http"
	"github.com/devasif/smart-task-management/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	db := container.GetMongoDB()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	cfg := container.GetConfig()

	// Avoid handing services a typed-nil publisher when the broker is down.
	var pub application.ActivityPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	users := mongodb.NewUserRepository(db)
	teams := mongodb.NewTeamRepository(db)
	projects := mongodb.NewProjectRepository(db)
	tasks := mongodb.NewTaskRepository(db)
	activities := mongodb.NewActivityRepository(db)

	authSvc := application.NewAuthService(users, jwt, logger)
	teamSvc := application.NewTeamService(teams, pub, logger)
	projectSvc := application.NewProjectService(projects, pub, logger)
	taskSvc := application.NewTaskService(tasks, pub, logger)
	insightsSvc := application.NewInsightsService(teams, projects, tasks, container.GetRedis(), cfg.SummaryCacheTTL, logger)
	activitySvc := application.NewActivityService(activities)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	r.Add(modules.NewTeamModule(handlers.NewTeamHandler(teamSvc, logger), jwt))
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(projectSvc, logger), jwt))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), jwt))
	r.Add(modules.NewInsightsModule(handlers.NewInsightsHandler(insightsSvc, logger), jwt))
	r.Add(modules.NewActivityModule(handlers.NewActivityHandler(activitySvc, logger), jwt))
}
