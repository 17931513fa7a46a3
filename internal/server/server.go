// Package server assembles the reference backend: storage, services,
// controllers and middleware behind one echo instance.
package server

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"farmdesk/pkg/metrics"
	"farmdesk/pkg/middleware"
	"farmdesk/router"

	healthCtrlImp "farmdesk/pkg/health/controllerImp"

	invCtrlImp "farmdesk/pkg/inventory/controllerImp"
	invRepoImp "farmdesk/pkg/inventory/repositoryImp"
	invSvcImp "farmdesk/pkg/inventory/serviceImp"

	plotCtrlImp "farmdesk/pkg/plot/controllerImp"
	plotRepoImp "farmdesk/pkg/plot/repositoryImp"
	plotSvcImp "farmdesk/pkg/plot/serviceImp"

	supCtrlImp "farmdesk/pkg/supervisor/controllerImp"
	supRepoImp "farmdesk/pkg/supervisor/repositoryImp"
	supSvcImp "farmdesk/pkg/supervisor/serviceImp"

	taskCtrlImp "farmdesk/pkg/task/controllerImp"
	taskRepoImp "farmdesk/pkg/task/repositoryImp"
	taskSvcImp "farmdesk/pkg/task/serviceImp"

	uploadCtrlImp "farmdesk/pkg/upload/controllerImp"
	uploadSvc "farmdesk/pkg/upload/service"
)

type Options struct {
	DB             *gorm.DB
	Presigner      uploadSvc.Presigner
	UploadsEnabled bool
	Log            *logrus.Entry
	Metrics        bool
}

// New wires every collection and returns a ready echo instance.
func New(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMiddleware.Recover())
	if opts.Log != nil {
		e.Use(middleware.RequestLog(opts.Log))
	}

	var metricsHandler echo.HandlerFunc
	if opts.Metrics {
		m := metrics.NewHTTP()
		e.Use(m.Middleware())
		metricsHandler = m.Handler()
	}

	return router.New(e, router.Controllers{
		Tasks:       taskCtrlImp.New(taskSvcImp.New(taskRepoImp.New(opts.DB))),
		Supervisors: supCtrlImp.New(supSvcImp.New(supRepoImp.New(opts.DB))),
		Plots:       plotCtrlImp.New(plotSvcImp.New(plotRepoImp.New(opts.DB))),
		Inventory:   invCtrlImp.New(invSvcImp.New(invRepoImp.New(opts.DB))),
		Upload:      uploadCtrlImp.New(opts.Presigner),
		Health:      healthCtrlImp.NewHealthCtrl(opts.DB, opts.UploadsEnabled),
		Metrics:     metricsHandler,
	})
}
