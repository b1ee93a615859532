package log

import (
	"os"
	"sync"

	"github.com/alphaoracle/alphaoracle/utils/env"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once      sync.Once
	appLogger AppLogger
)

type AppLogger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Panic(msg string, keysAndValues ...interface{})
	Fatal(msg string, keysAndValues ...interface{})
	SetDeploymentLevel(depl string)
	AddCallback(key string, level zapcore.Level, handler func(msg interface{}))
	RemoveCallback(key string)
}

func NewLogger() AppLogger {
	atom := zap.NewAtomicLevel()
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.StacktraceKey = "stack"
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if env.GetBool("DEBUG") {
		atom.SetLevel(zap.DebugLevel)
	} else {
		atom.SetLevel(zap.InfoLevel)
	}

	zl := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		atom,
	),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.AddCaller(),
		zap.AddCallerSkip(2),
	)

	return &logger{zap: zl.Sugar()}
}

type logCallback struct {
	level   zapcore.Level
	handler func(msg interface{})
}

type logger struct {
	zap       *zap.SugaredLogger
	callbacks sync.Map
	depl      string
}

func (l *logger) runCallbacks(level zapcore.Level, msg string, keysAndValues ...interface{}) {
	message := map[string]interface{}{
		"level":      level.String(),
		"message":    msg,
		"deployment": l.depl,
	}

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if k, ok := keysAndValues[i].(string); ok {
			message[k] = keysAndValues[i+1]
		}
	}

	l.callbacks.Range(func(key, value interface{}) bool {
		lc := value.(logCallback)
		if lc.level <= level {
			lc.handler(message)
		}
		return true
	})
}

func (l *logger) SetDeploymentLevel(depl string) {
	l.depl = depl
}

func (l *logger) AddCallback(key string, level zapcore.Level, handler func(msg interface{})) {
	l.callbacks.Store(key, logCallback{level: level, handler: handler})
}

func (l *logger) RemoveCallback(key string) {
	l.callbacks.Delete(key)
}

func (l *logger) Debug(msg string, keysAndValues ...interface{}) {
	l.zap.Debugw(msg, keysAndValues...)
}

func (l *logger) Info(msg string, keysAndValues ...interface{}) {
	l.zap.Infow(msg, keysAndValues...)
}

func (l *logger) Warn(msg string, keysAndValues ...interface{}) {
	l.zap.Warnw(msg, keysAndValues...)
	l.runCallbacks(zapcore.WarnLevel, msg, keysAndValues...)
}

func (l *logger) Error(msg string, keysAndValues ...interface{}) {
	l.zap.Errorw(msg, keysAndValues...)
	l.runCallbacks(zapcore.ErrorLevel, msg, keysAndValues...)
}

func (l *logger) Panic(msg string, keysAndValues ...interface{}) {
	l.runCallbacks(zapcore.PanicLevel, msg, keysAndValues...)
	l.zap.Panicw(msg, keysAndValues...)
}

func (l *logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.runCallbacks(zapcore.FatalLevel, msg, keysAndValues...)
	l.zap.Fatalw(msg, keysAndValues...)
}

// Logger returns the process-wide logger, constructing it on first use.
func Logger() AppLogger {
	once.Do(func() {
		appLogger = NewLogger()
	})
	return appLogger
}

func Debug(msg string, keysAndValues ...interface{}) {
	Logger().Debug(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...interface{}) {
	Logger().Info(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	Logger().Warn(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	Logger().Error(msg, keysAndValues...)
}

func Panic(msg string, keysAndValues ...interface{}) {
	Logger().Panic(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...interface{}) {
	Logger().Fatal(msg, keysAndValues...)
}
