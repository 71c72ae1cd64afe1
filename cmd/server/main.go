package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"sprout/config"
	"sprout/database"
	sproutMiddleware "sprout/pkg/middleware"
	"sprout/router"

	// Auth
	authCtrlImp "sprout/pkg/auth/controllerImp"

	// Plant / Room
	plantCtrlImp "sprout/pkg/plant/controllerImp"
	plantRepoImp "sprout/pkg/plant/repositoryImp"
	roomCtrlImp "sprout/pkg/room/controllerImp"
	roomRepoImp "sprout/pkg/room/repositoryImp"

	// Schedule (recurrence engine)
	schedCtrlImp "sprout/pkg/schedule/controllerImp"
	schedRepoImp "sprout/pkg/schedule/repositoryImp"
	schedSvcImp "sprout/pkg/schedule/serviceImp"

	// Care plan
	planCtrlImp "sprout/pkg/careplan/controllerImp"
	planRepoImp "sprout/pkg/careplan/repositoryImp"
	planSvcImp "sprout/pkg/careplan/serviceImp"

	// Observations
	obsCtrlImp "sprout/pkg/observe/controllerImp"
	obsRepoImp "sprout/pkg/observe/repositoryImp"

	// Insights
	insCtrlImp "sprout/pkg/insights/controllerImp"
	insSvcImp "sprout/pkg/insights/serviceImp"

	// AI / presets
	"sprout/pkg/ai"
	"sprout/pkg/presets"

	// Guides
	guidesCtrlImp "sprout/pkg/guides/controllerImp"
	guidesEmbedder "sprout/pkg/guides/embedder"
	guidesRepoImp "sprout/pkg/guides/repositoryImp"
	guidesSvcImp "sprout/pkg/guides/serviceImp"

	// Integrations
	"sprout/pkg/species"
	speciesCtrlImp "sprout/pkg/species/controllerImp"
	"sprout/pkg/weather"
	weatherCtrlImp "sprout/pkg/weather/controllerImp"

	// Notify
	notifyCtrlImp "sprout/pkg/notify/controllerImp"
	notifyRepoImp "sprout/pkg/notify/repositoryImp"
	notifySvcImp "sprout/pkg/notify/serviceImp"

	// Health
	healthCtrlImp "sprout/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	// strict auth first; devlogin (applied by the router) fills in a dev uid
	// only when this leaves none
	e.Use(sproutMiddleware.TokenAuth(cfg.EnableTokenAuth))

	// Static (the SPA bundle, when present)
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	if _, err := os.Stat("static/app.js"); err != nil {
		log.Printf("WARN: static/app.js not found: %v", err)
	}

	// 4) Species presets
	pres, err := presets.LoadFromFiles("./SpeciesDefaults.csv")
	if err != nil {
		log.Printf("presets warn: %v", err)
	}

	// 5) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock()
	}

	// 6) Guides wiring
	emb := guidesEmbedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	guidesRepo := guidesRepoImp.New(db)
	guidesSvc := guidesSvcImp.New(guidesRepo, emb)
	guidesCtrl := guidesCtrlImp.New(guidesSvc, cfg.GuideAllowedDomains)

	// 7) Repos
	plantRepo := plantRepoImp.New(db)
	roomRepo := roomRepoImp.New(db)
	obsRepo := obsRepoImp.New(db)
	ruleRepo := planRepoImp.New(db)
	taskRepo := schedRepoImp.NewTaskRepo(db)
	eventRepo := schedRepoImp.NewEventRepo(db)
	ruleReader := schedRepoImp.NewRuleReader(db)

	// 8) Services
	schedSvc := schedSvcImp.NewScheduleService(taskRepo, eventRepo, ruleReader)
	planSvc := planSvcImp.NewCarePlanService(ruleRepo, taskRepo, schedSvc, llm, guidesSvc, pres)
	insSvc := insSvcImp.New(eventRepo, taskRepo, ruleRepo)
	notifySvc := notifySvcImp.New(notifyRepoImp.New(db), schedSvc, plantRepo)

	// 9) Controllers
	plantCtrl := plantCtrlImp.New(plantRepo)
	roomCtrl := roomCtrlImp.New(roomRepo)
	planCtrl := planCtrlImp.New(planSvc, plantRepo)
	schedCtrl := schedCtrlImp.New(schedSvc)
	obsCtrl := obsCtrlImp.New(obsRepo)
	insCtrl := insCtrlImp.New(insSvc)
	weatherCtrl := weatherCtrlImp.New(weather.New(cfg.WeatherEndpoint))
	speciesCtrl := speciesCtrlImp.New(species.New(cfg.SpeciesEndpoint, cfg.SpeciesAPIKey))
	authCtrl := authCtrlImp.NewAuthController()
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	notifyCtrl := notifyCtrlImp.New(notifySvc)
	notifyCtrl.Register(e)

	// 10) Router
	r := router.New(
		e,
		plantCtrl,
		roomCtrl,
		planCtrl,
		schedCtrl,
		obsCtrl,
		insCtrl,
		guidesCtrl,
		weatherCtrl,
		speciesCtrl,
		authCtrl,
		healthCtrl,
	)

	// 11) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
