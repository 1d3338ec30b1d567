package logruspretty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	colorRed    = 31
	colorGreen  = 32
	colorYellow = 33
	colorBlue   = 34
	colorGray   = 37
)

// PrettyHandler is a logrus formatter for local development: colored level,
// short timestamp, message, fields as indented JSON.
type PrettyHandler struct {
	out io.Writer
}

func NewPrettyHandler(out io.Writer) *PrettyHandler {
	return &PrettyHandler{out: out}
}

func (h *PrettyHandler) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "\x1b[%dm%s\x1b[0m[%s] %s",
		levelColor(entry.Level),
		strings.ToUpper(entry.Level.String()),
		entry.Time.Format("15:04:05.000"),
		entry.Message,
	)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fields := make(map[string]interface{}, len(entry.Data))
		for _, k := range keys {
			fields[k] = fmt.Sprintf("%v", entry.Data[k])
		}
		encoded, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, " \x1b[%dm%s\x1b[0m", colorGray, encoded)
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func levelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return colorGray
	case logrus.InfoLevel:
		return colorBlue
	case logrus.WarnLevel:
		return colorYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return colorRed
	default:
		return colorGreen
	}
}
