// Package logger builds configured log/slog loggers for datakit tools.
//
// It is a small factory over the standard structured logger: pick an
// output format (text for terminals, JSON for log aggregation), a level
// and a destination, and get back a ready *slog.Logger. Packages that
// accept a logger option expect a *slog.Logger, so the factory is the
// only place format decisions live.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("anonymization finished", slog.Int("partitions", n))
package logger
