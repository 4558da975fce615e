package httputils

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lucperkins/rek"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"

	"github.com/soxt/soxt/pkg/logger"
)

// Fetcher downloads raw text documents, e.g. simulation logs published on
// a web server. Requests are retried and paced.
type Fetcher struct {
	http *http.Client
	log  *logrus.Entry
}

func NewFetcher(timeout time.Duration, requestsPerSecond int) *Fetcher {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	var rl ratelimit.Limiter
	if requestsPerSecond > 0 {
		rl = ratelimit.New(requestsPerSecond, ratelimit.WithoutSlack)
	}

	return &Fetcher{
		http: NewRetryableHttpClient(timeout, rl),
		log:  logger.GetLogger("fetch"),
	}
}

// FetchText retrieves url and returns the decoded body.
func (f *Fetcher) FetchText(url string) (string, error) {
	f.log.Debugf("Fetching: %s", url)

	resp, err := rek.Get(url, rek.Client(f.http))
	if err != nil {
		return "", errors.Wrapf(err, "request %s", url)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("unexpected response for %s: %s", url, resp.Status())
	}

	b, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", errors.Wrap(err, "read response body")
	}

	return string(b), nil
}
