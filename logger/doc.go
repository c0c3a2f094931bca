// Package logger is the public API of disco. Most users only need to
// import this package.
//
// A Logger is immutable after construction. The level, layout, colour
// format and theme are set once via the Builder (or a Config) and never
// modified; the per-level gradient cursors live in the painter and are
// the only shared mutable state.
//
// The package initializes a default Logger (InfoLevel, simple layout,
// solid colours, Warn and Error on stderr) in init(). Init replaces it
// exactly once, and the package-level functions delegate to whichever
// is installed:
//
//	logger.Info("ready")
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithLevel(logger.DebugLevel).
//	    WithColorFormat(painter.InlineGradient(20)).
//	    WithTheme(theme.Duotone{}).
//	    WithTarget("api").
//	    Build()
//
// or load a Config from a file with LoadConfig.
//
// Rendering is synchronous: each record is formatted, coloured and
// written before the call returns. Records that cannot be formatted are
// dropped and reported through a zap logger (see WithErrorLogger); the
// caller is never interrupted.
package logger
