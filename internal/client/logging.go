package client

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// loggingRoundTripper 请求日志：每次传输记一条结构化日志，
// 带操作ID便于串起重定向后的多条记录
type loggingRoundTripper struct {
	next   http.RoundTripper
	logger *logrus.Logger
}

func newLoggingRoundTripper(next http.RoundTripper, logger *logrus.Logger) *loggingRoundTripper {
	return &loggingRoundTripper{next: next, logger: logger}
}

func (l *loggingRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	startTime := time.Now()
	operationID := uuid.New().String()

	response, err := l.next.RoundTrip(request)

	latency := time.Since(startTime)
	fields := logrus.Fields{
		"op_id":   operationID,
		"method":  request.Method,
		"path":    request.URL.Path,
		"latency": latency,
	}
	if err != nil {
		l.logger.WithFields(fields).WithError(err).Error("request failed")
		return response, err
	}

	fields["status"] = response.StatusCode
	l.logger.WithFields(fields).Info("request processed")
	return response, nil
}
