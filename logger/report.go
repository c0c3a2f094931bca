package logger

import (
	"errors"
	"os"
	"sync/atomic"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/disco/core"
)

// defaultErrorLogger writes the engine's own diagnostics to stderr
func defaultErrorLogger() *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	c := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	return zap.New(c).Named("disco")
}

// reporter surfaces render and write failures without interrupting the
// caller. Palette errors are reported once per level since they repeat
// on every record.
type reporter struct {
	log         *zap.Logger
	paletteSeen [len(core.Levels)]atomic.Bool
}

func newReporter(z *zap.Logger) *reporter {
	if z == nil {
		z = defaultErrorLogger()
	}
	return &reporter{log: z}
}

func (r *reporter) dropped(rec *core.Record, err error) {
	r.log.Error("record dropped",
		zap.Stringer("level", rec.Level),
		zap.String("target", rec.Target),
		zap.Error(err),
	)
}

func (r *reporter) writeFailed(level core.Level, err error) {
	r.log.Warn("write failed", zap.Stringer("level", level), zap.Error(err))
}

func (r *reporter) palette(level core.Level, err error) {
	if !level.Valid() || !r.paletteSeen[level].CompareAndSwap(false, true) {
		return
	}
	r.log.Warn("rendering uncoloured", zap.Stringer("level", level), zap.Error(err))
}

// sync flushes the error logger. Syncing a terminal returns EINVAL on
// some platforms, which is not a failure worth surfacing.
func (r *reporter) sync() error {
	if err := r.log.Sync(); err != nil && !isIgnorableSyncError(err) {
		return err
	}
	return nil
}

func isIgnorableSyncError(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EBADF)
}
