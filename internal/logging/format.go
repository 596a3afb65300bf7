package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

// LineFormatter renders entries as
//
//	2025-10-08 21:01:05 INFO [component] – message key=value
//
// The component tag is taken from the "component" field when present.
type LineFormatter struct{}

// Format implements logrus.Formatter.
func (LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(entry.Time.Format(timestampFormat))
	b.WriteByte(' ')
	b.WriteString(levelLabel(entry.Level))

	if component, ok := entry.Data[ComponentKey].(string); ok && component != "" {
		fmt.Fprintf(&b, " [%s]", component)
	}

	if msg := strings.TrimSpace(entry.Message); msg != "" {
		b.WriteString(" – ")
		b.WriteString(msg)
	}

	fields := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k == ComponentKey {
			continue
		}
		fields = append(fields, k)
	}
	sort.Strings(fields)
	for _, k := range fields {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelLabel(level logrus.Level) string {
	switch level {
	case logrus.WarnLevel:
		return "WARN"
	case logrus.PanicLevel, logrus.FatalLevel:
		return "ERROR"
	default:
		return strings.ToUpper(level.String())
	}
}
