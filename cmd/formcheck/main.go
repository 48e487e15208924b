// Command formcheck serves form validation over HTTP.
//
// Environment:
//
//	APP_ENV          development | staging | production
//	APP_NAME         service name in logs (default formcheck)
//	FORM_SPEC_PATH   YAML field specs; the built-in signup form when empty
//	FORM_SUCCESS_MESSAGE  form-level message for a valid submission; defaults to
//	                      the signup message only for the built-in form
//	HTTP_ADDR, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT,
//	HTTP_SHUTDOWN_TIMEOUT
//	RATE_LIMIT_ENABLED, RATE_LIMIT_CAPACITY, RATE_LIMIT_REFILL_RATE,
//	RATE_LIMIT_REFILL_INTERVAL, RATE_LIMIT_STALE_AFTER
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/formcheck/modules/validation"
	"github.com/dmitrymomot/formcheck/pkg/clientip"
	"github.com/dmitrymomot/formcheck/pkg/config"
	"github.com/dmitrymomot/formcheck/pkg/formspec"
	"github.com/dmitrymomot/formcheck/pkg/httpserver"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/formcheck/pkg/requestid"
	"github.com/dmitrymomot/formcheck/pkg/signup"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

type appConfig struct {
	Env            string  `env:"APP_ENV" envDefault:"development"`
	Name           string  `env:"APP_NAME" envDefault:"formcheck"`
	SpecPath       string  `env:"FORM_SPEC_PATH"`
	SuccessMessage *string `env:"FORM_SUCCESS_MESSAGE"`
	RateLimit      bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
}

// successMessage returns FORM_SUCCESS_MESSAGE when set. Otherwise the
// built-in signup form gets its own message and a loaded spec gets none.
func (c appConfig) successMessage() string {
	if c.SuccessMessage != nil {
		return *c.SuccessMessage
	}
	if c.SpecPath == "" {
		return signup.SuccessMessage
	}
	return ""
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	var httpCfg httpserver.Config
	if err := config.LoadWithPrefix(&httpCfg, "HTTP_"); err != nil {
		panic(err)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	form, err := loadForm(cfg.SpecPath)
	if err != nil {
		log.Error("failed to load form spec", logger.Error(err), slog.String("path", cfg.SpecPath))
		os.Exit(1)
	}
	log.Info("form loaded", logger.Form(form.Name()), slog.Int("fields", len(form.Fields())))

	var limiter *ratelimiter.Limiter
	if cfg.RateLimit {
		var rlCfg ratelimiter.Config
		if err := config.LoadWithPrefix(&rlCfg, "RATE_LIMIT_"); err != nil {
			panic(err)
		}
		if limiter, err = ratelimiter.New(rlCfg); err != nil {
			log.Error("invalid rate limit configuration", logger.Error(err))
			os.Exit(1)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := httpserver.New(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), newRouter(log, form, cfg.successMessage(), limiter, reg)); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

// loadForm reads the YAML spec at path, or returns the built-in signup form
// when path is empty.
func loadForm(path string) (*validator.Form, error) {
	if path == "" {
		return signup.Form(), nil
	}
	return formspec.LoadFile(path)
}

func newRouter(log *slog.Logger, form *validator.Form, successMessage string, limiter *ratelimiter.Limiter, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Mount("/"+form.Name(), validation.Router(validation.Options{
		Form:           form,
		SuccessMessage: successMessage,
		Logger:         log,
		RateLimiter:    limiter,
		Metrics:        validation.NewMetrics(reg),
	}))

	return r
}
