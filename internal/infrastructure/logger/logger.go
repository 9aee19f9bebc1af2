package logger

import (
	"io"
	"log"
	"os"
)

var (
	Info  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Warn  *log.Logger
)

const logFlags = log.Ldate | log.Ltime | log.LUTC | log.Lshortfile

type level struct {
	name   string
	logger **log.Logger
}

var levels = []level{
	{"INFO", &Info},
	{"ERROR", &Error},
	{"DEBUG", &Debug},
	{"WARN", &Warn},
}

func init() {
	for _, l := range levels {
		*l.logger = log.New(os.Stdout, l.name+": ", logFlags)
	}
}

// SetRole tags every subsequent line with the process role, e.g. "primary"
// or "worker 3". An empty role removes the tag.
func SetRole(role string) {
	tag := ""
	if role != "" {
		tag = "[" + role + "] "
	}
	for _, l := range levels {
		(*l.logger).SetPrefix(l.name + ": " + tag)
	}
}

// SetOutput redirects all levels to w.
func SetOutput(w io.Writer) {
	for _, l := range levels {
		(*l.logger).SetOutput(w)
	}
}
