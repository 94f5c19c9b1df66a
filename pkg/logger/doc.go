// Package logger standardises structured logging across the SDK on top of
// Go's slog package. It exposes a single factory, New, configured by Option
// functions (output format, minimum level, destination, static attributes),
// plus typed attribute constructors so log keys stay consistent between
// packages.
//
// Components never log through a package-global by default: every service in
// this module accepts a logger via its WithLogger option and discards output
// when none is provided.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("login finished",
//	    logger.Component("login"),
//	    logger.AppID("1234"),
//	)
package logger
