package app

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/fx"

	"github.com/shushrut/shushrut_backend/config"
	"github.com/shushrut/shushrut_backend/internal/events"
	"github.com/shushrut/shushrut_backend/internal/service/analysis"
	"github.com/shushrut/shushrut_backend/internal/service/doctor"
	"github.com/shushrut/shushrut_backend/internal/service/patient"
	"github.com/shushrut/shushrut_backend/internal/store"
	"github.com/shushrut/shushrut_backend/pkg/objectstore"
	pasetotoken "github.com/shushrut/shushrut_backend/pkg/paseto"
	"github.com/shushrut/shushrut_backend/pkg/predict"
)

// ServiceModule provides the stores and application services.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePatientStore,
		ProvideDoctorStore,
		ProvideReportStore,
		ProvidePatientService,
		ProvideDoctorService,
		ProvideAnalysisService,
		ProvidePasetoManager,
	),
)

func ProvidePatientStore(db *mongo.Database) store.Patients {
	return store.NewPatients(db)
}

func ProvideDoctorStore(db *mongo.Database) store.Doctors {
	return store.NewDoctors(db)
}

func ProvideReportStore(db *mongo.Database) store.Reports {
	return store.NewReports(db)
}

func ProvidePatientService(
	patients store.Patients,
	reports store.Reports,
	objects *objectstore.Client,
	pub events.Publisher,
	log *slog.Logger,
) patient.Service {
	return patient.New(patients, reports, objects, pub, log)
}

func ProvideDoctorService(doctors store.Doctors, objects *objectstore.Client, log *slog.Logger) doctor.Service {
	return doctor.New(doctors, objects, log)
}

func ProvideAnalysisService(
	patients patient.Service,
	predictor *predict.Client,
	pub events.Publisher,
	log *slog.Logger,
) analysis.Service {
	return analysis.New(patients, predictor, pub, log)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
