// Package logger builds *slog.Logger instances for the service.
//
// New takes functional options selecting the output format, minimum level,
// static attributes and ContextExtractor callbacks. Extractors run on every
// record and copy request-scoped values (request id, environment) out of the
// context.Context passed to the *Context logging methods.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "productlobby"),
//	    logger.WithConfig(cfg.Log),
//	    logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "campaign stats served",
//	    logger.CampaignID(id),
//	    logger.Hit(true),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Helpers that receive an empty value return the zero slog.Attr, which slog
// drops.
package logger
