// Package logger builds slog loggers for the service.
//
// New applies options over JSON/INFO defaults and wraps the handler with a
// decorator that adds request-scoped attributes from the context:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form validated", logger.Form("signup"), logger.Valid(report.Valid()))
//
// The attribute helpers keep key names consistent across packages.
package logger
