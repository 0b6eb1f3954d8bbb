// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package xlog provides a simple leveled logger for the lzp packages and tools.

The Go standard library supports a log package, which cannot switch off
output by severity. The functions of this package check the flags of the
logger before formatting anything, so disabled debug output is cheap.

The levels are Debug, Print, Warn and Fatal. The flags Lnodebug, Lnoprint,
Lnowarn and Lnofatal suppress the respective output. Fatal functions exit the
program even if the output is suppressed. The default flags suppress debug
output.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// The flags Ldate to Lshortfile have the same meaning as in the log
// package.
const (
	Ldate = 1 << iota
	Ltime
	Lmicroseconds
	Llongfile
	Lshortfile
	Lnodebug
	Lnoprint
	Lnowarn
	Lnofatal
	// Lstdflags are the default flags of the standard logger.
	Lstdflags = Ldate | Ltime | Lnodebug
)

// logFlags masks the flags shared with the log package.
const logFlags = Ldate | Ltime | Lmicroseconds | Llongfile | Lshortfile

// Logger supports leveled logging. Its methods may be called from multiple
// goroutines.
type Logger struct {
	mu   sync.Mutex
	flag int
	l    *log.Logger
}

// New creates a new logger writing to out.
func New(out io.Writer, prefix string, flag int) *Logger {
	return &Logger{flag: flag, l: log.New(out, prefix, flag&logFlags)}
}

// std is the package logger.
var std = New(os.Stderr, "", Lstdflags)

// Flags returns the flags of the logger.
func (l *Logger) Flags() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flag
}

// SetFlags sets the flags of the logger.
func (l *Logger) SetFlags(flag int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flag = flag
	l.l.SetFlags(flag & logFlags)
}

// SetPrefix sets the output prefix.
func (l *Logger) SetPrefix(prefix string) { l.l.SetPrefix(prefix) }

// SetOutput sets the output destination.
func (l *Logger) SetOutput(w io.Writer) { l.l.SetOutput(w) }

// output writes s unless the flag noflag is set.
func (l *Logger) output(noflag int, calldepth int, s string) {
	if l.Flags()&noflag != 0 {
		return
	}
	l.l.Output(calldepth+1, s)
}

// Output writes the string s at print level. It makes the Logger usable
// where an interface of the log.Logger Output method is expected.
func (l *Logger) Output(calldepth int, s string) error {
	l.output(Lnoprint, calldepth+1, s)
	return nil
}

// Debug prints debug output using the arguments as fmt.Sprint.
func (l *Logger) Debug(v ...interface{}) {
	if l.Flags()&Lnodebug == 0 {
		l.output(Lnodebug, 2, fmt.Sprint(v...))
	}
}

// Debugf prints debug output using the format string.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.Flags()&Lnodebug == 0 {
		l.output(Lnodebug, 2, fmt.Sprintf(format, v...))
	}
}

// Print prints the arguments like fmt.Sprint.
func (l *Logger) Print(v ...interface{}) {
	if l.Flags()&Lnoprint == 0 {
		l.output(Lnoprint, 2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string.
func (l *Logger) Printf(format string, v ...interface{}) {
	if l.Flags()&Lnoprint == 0 {
		l.output(Lnoprint, 2, fmt.Sprintf(format, v...))
	}
}

// Warn prints a warning.
func (l *Logger) Warn(v ...interface{}) {
	if l.Flags()&Lnowarn == 0 {
		l.output(Lnowarn, 2, fmt.Sprint(v...))
	}
}

// Warnf prints a warning using the format string.
func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.Flags()&Lnowarn == 0 {
		l.output(Lnowarn, 2, fmt.Sprintf(format, v...))
	}
}

// Fatal prints the message and exits the program with status 1.
func (l *Logger) Fatal(v ...interface{}) {
	l.output(Lnofatal, 2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf prints the formatted message and exits the program with status 1.
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.output(Lnofatal, 2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Flags returns the flags of the package logger.
func Flags() int { return std.Flags() }

// SetFlags sets the flags of the package logger.
func SetFlags(flag int) { std.SetFlags(flag) }

// SetPrefix sets the prefix of the package logger.
func SetPrefix(prefix string) { std.SetPrefix(prefix) }

// SetOutput sets the output of the package logger.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// Debug prints debug output with the package logger.
func Debug(v ...interface{}) {
	if std.Flags()&Lnodebug == 0 {
		std.output(Lnodebug, 2, fmt.Sprint(v...))
	}
}

// Debugf prints formatted debug output with the package logger.
func Debugf(format string, v ...interface{}) {
	if std.Flags()&Lnodebug == 0 {
		std.output(Lnodebug, 2, fmt.Sprintf(format, v...))
	}
}

// Print prints with the package logger.
func Print(v ...interface{}) {
	if std.Flags()&Lnoprint == 0 {
		std.output(Lnoprint, 2, fmt.Sprint(v...))
	}
}

// Printf prints formatted output with the package logger.
func Printf(format string, v ...interface{}) {
	if std.Flags()&Lnoprint == 0 {
		std.output(Lnoprint, 2, fmt.Sprintf(format, v...))
	}
}

// Warn prints a warning with the package logger.
func Warn(v ...interface{}) {
	if std.Flags()&Lnowarn == 0 {
		std.output(Lnowarn, 2, fmt.Sprint(v...))
	}
}

// Warnf prints a formatted warning with the package logger.
func Warnf(format string, v ...interface{}) {
	if std.Flags()&Lnowarn == 0 {
		std.output(Lnowarn, 2, fmt.Sprintf(format, v...))
	}
}

// Fatal prints the message with the package logger and exits with status 1.
func Fatal(v ...interface{}) {
	std.output(Lnofatal, 2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf prints the formatted message with the package logger and exits
// with status 1.
func Fatalf(format string, v ...interface{}) {
	std.output(Lnofatal, 2, fmt.Sprintf(format, v...))
	os.Exit(1)
}
