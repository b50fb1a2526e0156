// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package logger

// NullLogger discards everything. Fatal and Panic still stop the caller.
type NullLogger struct{}

var _ Logger = (*NullLogger)(nil)

func (l *NullLogger) Fatal(args ...interface{})                 { panic("fatal") }
func (l *NullLogger) Fatalf(format string, args ...interface{}) { panic("fatal") }
func (l *NullLogger) Fatalln(args ...interface{})               { panic("fatal") }

func (l *NullLogger) Debug(args ...interface{})                 {}
func (l *NullLogger) Debugf(format string, args ...interface{}) {}
func (l *NullLogger) Debugln(args ...interface{})               {}

func (l *NullLogger) Error(args ...interface{})                 {}
func (l *NullLogger) Errorf(format string, args ...interface{}) {}
func (l *NullLogger) Errorln(args ...interface{})               {}

func (l *NullLogger) Info(args ...interface{})                 {}
func (l *NullLogger) Infof(format string, args ...interface{}) {}
func (l *NullLogger) Infoln(args ...interface{})               {}

func (l *NullLogger) Warn(args ...interface{})                 {}
func (l *NullLogger) Warnf(format string, args ...interface{}) {}
func (l *NullLogger) Warnln(args ...interface{})               {}

func (l *NullLogger) Panic(args ...interface{})                 { panic("panic") }
func (l *NullLogger) Panicf(format string, args ...interface{}) { panic("panic") }
func (l *NullLogger) Panicln(args ...interface{})               { panic("panic") }

func (l *NullLogger) WithFields(fields map[string]interface{}) Logger { return l }
func (l *NullLogger) WithField(key string, value interface{}) Logger  { return l }
func (l *NullLogger) WithError(err error) Logger                      { return l }
