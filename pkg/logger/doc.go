// Package logger builds the *slog.Logger used across authkit and provides
// attribute helpers that keep key names consistent.
//
// New applies functional options on top of production defaults (JSON, info
// level, stdout). WithEnvironment switches to text output and debug level in
// development. Context extractors registered with WithContextExtractors run on
// every record, so request-scoped values such as a request id show up without
// being passed explicitly.
//
//	log := logger.New(logger.WithEnvironment(environment.Development, "authkit"))
//	log.InfoContext(ctx, "session created",
//		logger.Component("session"),
//		logger.UserID(userID),
//		logger.SessionID(id),
//	)
//
// Components that accept an optional logger default to Discard.
package logger
