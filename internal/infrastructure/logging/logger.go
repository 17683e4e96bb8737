package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	log  *logrus.Logger
)

// L returns the shared application logger, configured on first use from
// LOG_LEVEL (trace..fatal, default info) and LOG_FORMAT (json|text).
func L() *logrus.Logger {
	once.Do(func() {
		log = logrus.New()
		log.SetOutput(os.Stdout)

		if lvl, err := logrus.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil {
			log.SetLevel(lvl)
		} else {
			log.SetLevel(logrus.InfoLevel)
		}

		if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
			log.SetFormatter(&logrus.JSONFormatter{})
		} else {
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}
	})
	return log
}
