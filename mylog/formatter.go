package mylog

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
)

var (
	debugColor = ansi.ColorFunc("blue")
	infoColor  = ansi.ColorFunc("green")
	warnColor  = ansi.ColorFunc("yellow")
	errorColor = ansi.ColorFunc("red+b")
	fieldColor = ansi.ColorFunc("cyan")
)

// TextFormatter prints "time LEVEL [func] message key=value ..." with the
// level and keys colored for terminals.
type TextFormatter struct {
	ForceColors     bool
	DisableColors   bool
	FullTimestamp   bool
	TimestampFormat string
}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	colored := f.ForceColors && !f.DisableColors

	format := f.TimestampFormat
	if format == "" {
		format = time.RFC3339
	}
	if f.FullTimestamp {
		b.WriteString(entry.Time.Format(format))
		b.WriteByte(' ')
	}

	level := fmt.Sprintf("%-5.5s", levelText(entry.Level))
	if colored {
		level = levelColor(entry.Level)(level)
	}
	b.WriteString(level)

	if fn, ok := entry.Data[funcField]; ok {
		fmt.Fprintf(b, " [%v]", fn)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != funcField {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		key := k
		if colored {
			key = fieldColor(k)
		}
		fmt.Fprintf(b, " %s=%v", key, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelText(l logrus.Level) string {
	if l == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(l.String())
}

func levelColor(l logrus.Level) func(string) string {
	switch l {
	case logrus.DebugLevel, logrus.TraceLevel:
		return debugColor
	case logrus.InfoLevel:
		return infoColor
	case logrus.WarnLevel:
		return warnColor
	default:
		return errorColor
	}
}
