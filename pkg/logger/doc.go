// Package logger builds *slog.Logger values configured with functional
// options and offers attribute helpers with consistent keys.
//
// New picks a JSON or text handler, attaches static attributes and, when
// context extractors are registered, wraps the handler so that values stored
// in the record context (such as the active locale) are logged as well.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "authinput"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Warn("invalid value", logger.Field("email"), logger.Kind(verr.Kind))
//
// Error returns an empty attribute for nil errors, so it can be passed
// unconditionally.
package logger
