package source

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
)

// newRetryableHTTPClient returns a plain *http.Client whose transport retries
// transient failures and waits on rl before every attempt.
func newRetryableHTTPClient(timeout time.Duration, retries int, wait time.Duration, rl ratelimit.Limiter, log *logrus.Entry) *http.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.RetryWaitMin = wait
	client.RetryWaitMax = 16 * wait
	client.HTTPClient.Timeout = timeout
	client.Logger = leveledLogger{log: log}
	client.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if rl != nil {
			rl.Take()
		}
		if attempt > 0 {
			log.Debugf("Retrying %s (attempt %d)", req.URL.Redacted(), attempt+1)
		}
	}

	return client.StandardClient()
}

// leveledLogger routes retryablehttp's logging through logrus.
type leveledLogger struct {
	log *logrus.Entry
}

func (l leveledLogger) fields(keysAndValues []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return l.log.WithFields(fields)
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Error(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Debug(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Trace(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Warn(msg)
}
