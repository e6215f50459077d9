package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tillworks/posledger/internal/category"
	categorydomain "github.com/tillworks/posledger/internal/category/domain"
	"github.com/tillworks/posledger/internal/config"
	"github.com/tillworks/posledger/internal/export"
	"github.com/tillworks/posledger/internal/invoice"
	invoicedomain "github.com/tillworks/posledger/internal/invoice/domain"
	obsmetrics "github.com/tillworks/posledger/internal/observability/metrics"
	"github.com/tillworks/posledger/internal/saleslog"
	saleslogdomain "github.com/tillworks/posledger/internal/saleslog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	log    *zap.Logger
	layout *config.LayoutConfigHolder

	categorySvc categorydomain.Service
	session     invoicedomain.Session
	salesSvc    saleslogdomain.Service
	exporter    export.Service
}

type ServerParam struct {
	fx.In

	Engine *gin.Engine
	Cfg    config.Config
	Log    *zap.Logger
	Layout *config.LayoutConfigHolder

	CategorySvc categorydomain.Service
	Session     invoicedomain.Session
	SalesSvc    saleslogdomain.Service
	Exporter    export.Service
}

func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(AccessLogMiddleware(log))
	r.Use(httpMetrics.Middleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func NewServer(p ServerParam) *Server {
	s := &Server{
		engine: p.Engine,
		cfg:    p.Cfg,
		log:    p.Log.Named("http.server"),
		layout: p.Layout,

		categorySvc: p.CategorySvc,
		session:     p.Session,
		salesSvc:    p.SalesSvc,
		exporter:    p.Exporter,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")

	categories := api.Group("/categories")
	categories.GET("", s.ListCategories)
	categories.POST("", s.CreateCategory)
	categories.PUT("/:id", s.UpdateCategory)
	categories.DELETE("/:id", s.DeleteCategory)

	inv := api.Group("/invoice")
	inv.GET("", s.GetInvoice)
	inv.POST("/items", s.AddInvoiceItem)
	inv.POST("/checkout", s.CheckoutInvoice)
	inv.DELETE("", s.DiscardInvoice)

	sales := api.Group("/sales")
	sales.GET("", s.ListSales)
	sales.POST("/:id/export", s.ExportSale)
}

func run(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			go func() {
				s.log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.log.Info("shutting down http server")
			return srv.Shutdown(ctx)
		},
	})
}

// Module wires the HTTP surface and the domain modules it serves.
var Module = fx.Module("http.server",
	obsmetrics.Module,
	category.Module,
	saleslog.Module,
	export.Module,
	invoice.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(run),
)
