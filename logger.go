package spell

import "go.uber.org/zap"

// logger wraps *zap.Logger so that a nil logger passed to WithLogger
// degrades to a no-op instead of panicking. It is only consulted by the
// dictionary loaders; snapshot save/load and the hot
// lookup/compound/segmentation paths never log.
type logger struct {
	z *zap.Logger
}

func newLogger(z *zap.Logger) logger {
	if z == nil {
		z = zap.NewNop()
	}
	return logger{z: z}
}

func (l logger) Info(msg string, fields ...zap.Field) {
	l.z.Info(msg, fields...)
}

func (l logger) Warn(msg string, fields ...zap.Field) {
	l.z.Warn(msg, fields...)
}

func (l logger) Error(msg string, fields ...zap.Field) {
	l.z.Error(msg, fields...)
}
