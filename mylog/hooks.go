package mylog

import (
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

const funcField = "func"

type functionHooker struct{}

func (functionHooker) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (functionHooker) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data[funcField]; ok {
		return nil
	}
	if name := callerName(); name != "" {
		entry.Data[funcField] = name
	}
	return nil
}

// callerName walks out of logrus and this package to the first user frame.
func callerName() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(4, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "sirupsen/logrus") && !strings.Contains(frame.Function, "paygate/mylog") {
			return path.Base(frame.Function)
		}
		if !more {
			return ""
		}
	}
}

// LoadFunctionHooker tags every entry with the calling function.
func LoadFunctionHooker(l *logrus.Logger) {
	l.AddHook(functionHooker{})
}
