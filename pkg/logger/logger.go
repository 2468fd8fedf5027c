package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger. Development gets a human-readable
// console writer at debug level; everything else logs JSON at info.
func Init(environment string) {
	if environment == "development" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		return
	}
	log = zerolog.New(os.Stdout).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}

func Debug(msg string, args ...any) { emit(log.Debug(), msg, args) }
func Info(msg string, args ...any)  { emit(log.Info(), msg, args) }
func Warn(msg string, args ...any)  { emit(log.Warn(), msg, args) }
func Error(msg string, args ...any) { emit(log.Error(), msg, args) }

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) {
	emit(log.Fatal(), msg, args)
}

// emit accepts alternating key/value pairs; a bare error argument is
// attached under the "error" key.
func emit(e *zerolog.Event, msg string, args []any) {
	for i := 0; i < len(args); {
		if err, ok := args[i].(error); ok {
			e = e.Err(err)
			i++
			continue
		}
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			e = e.Interface(fmt.Sprintf("arg%d", i), args[i])
			i++
			continue
		}
		e = e.Interface(key, args[i+1])
		i += 2
	}
	e.Msg(msg)
}
