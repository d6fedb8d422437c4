package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/shushrut/shushrut_backend/config"
	"github.com/shushrut/shushrut_backend/internal/api/http/handler"
	"github.com/shushrut/shushrut_backend/internal/api/http/middleware"
	"github.com/shushrut/shushrut_backend/internal/service/analysis"
	"github.com/shushrut/shushrut_backend/internal/service/doctor"
	"github.com/shushrut/shushrut_backend/internal/service/patient"
	pasetotoken "github.com/shushrut/shushrut_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg         *config.Config
	Redis       *redis.Client `optional:"true"`
	PatientSvc  patient.Service
	DoctorSvc   doctor.Service
	AnalysisSvc analysis.Service
	PasetoMgr   *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	analysisH := handler.NewAnalysisHandler(r.p.AnalysisSvc)

	api := app.Group("/api")

	r.registerPatientRoutes(api, patientH, analysisH, authRequired)
	r.registerDoctorRoutes(api, doctorH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
