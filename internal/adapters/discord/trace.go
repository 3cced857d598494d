package discord

import (
	"time"

	"github.com/sirupsen/logrus"
)

func step(log logrus.FieldLogger, label string) func() {
	start := time.Now()
	return func() { log.WithField("dur", time.Since(start)).Debugf("[trace] %s", label) }
}
