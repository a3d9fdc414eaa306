package mylog

import (
	"os"
	"strings"
	"time"

	"github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/slackernews/paygate/node"
)

// const
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
)

type MyLog struct {
	Logger *logrus.Logger
}

func (l *MyLog) GetLog() *logrus.Logger {
	return l.Logger
}

var levels = map[string]logrus.Level{
	PanicLevel: logrus.PanicLevel,
	FatalLevel: logrus.FatalLevel,
	ErrorLevel: logrus.ErrorLevel,
	WarnLevel:  logrus.WarnLevel,
	InfoLevel:  logrus.InfoLevel,
	DebugLevel: logrus.DebugLevel,
}

// convertLevel falls back to info for unknown names.
func convertLevel(level string) logrus.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return logrus.InfoLevel
}

func NewMyLog(path string, level string, age uint32) (*MyLog, error) {
	mylog := &MyLog{}
	mylog.Logger = Init(path, level, age)
	return mylog, nil
}

// Init loggers
func Init(path string, level string, age uint32) *logrus.Logger {
	clog := logrus.New()
	LoadFunctionHooker(clog)
	if path != "" {
		if hook := NewFileRotateHooker(path, age); hook != nil {
			clog.Hooks.Add(hook)
		}
	}
	clog.Out = os.Stdout
	clog.Formatter = &TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	}
	clog.Level = convertLevel(level)

	return clog
}

// NewFileRotateHooker writes every entry to path, rotated hourly and kept
// for age hours. It returns nil when the file cannot be opened.
func NewFileRotateHooker(path string, age uint32) logrus.Hook {
	if age == 0 {
		age = 24
	}
	writer, err := rotatelogs.New(
		path+".%Y%m%d%H",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithMaxAge(time.Duration(age)*time.Hour),
		rotatelogs.WithRotationTime(time.Hour),
	)
	if err != nil {
		return nil
	}
	return lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, &logrus.TextFormatter{DisableColors: true, TimestampFormat: "2006-01-02 15:04:05"})
}

func (l *MyLog) Start(node *node.Node) error {
	node.Log = l.Logger
	return nil
}

func (l *MyLog) Stop() error {
	return nil
}
