package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/go-github/v62/github"

	apperrors "github.com/naka-gawa/github-profile-readme/internal/errors"
)

const headerRateReset = "X-RateLimit-Reset"

// classify maps an error returned by the REST client onto the application error taxonomy.
// Errors it does not recognise are returned unchanged.
func classify(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return apperrors.NewRateLimitedError(rateReset(rateErr.Response), err)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return apperrors.NewRateLimitedError(rateReset(abuseErr.Response), err)
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return classifyStatus(respErr.Response, err)
	}
	if errors.Is(err, errRetryBlocked) {
		return apperrors.NewRateLimitedError(time.Time{}, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return apperrors.NewNetworkError(urlErr.Err.Error(), err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewNetworkError(err.Error(), err)
	}
	return err
}

// rateReset reads the rate limit reset time from resp.
// It returns the zero time when the header is missing or is not integer epoch seconds.
func rateReset(resp *http.Response) time.Time {
	if resp == nil {
		return time.Time{}
	}
	secs, err := strconv.ParseInt(resp.Header.Get(headerRateReset), 10, 64)
	if err != nil || secs <= 0 {
		return time.Time{}
	}
	return time.Unix(secs, 0)
}

// classifyStatus maps a failed HTTP response onto the application error taxonomy.
func classifyStatus(resp *http.Response, err error) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return apperrors.NewNotFoundError(requestURL(resp), err)
	case http.StatusForbidden, http.StatusTooManyRequests:
		return apperrors.NewRateLimitedError(rateReset(resp), err)
	default:
		return apperrors.NewAPIError(resp.StatusCode, requestURL(resp), err)
	}
}

func requestURL(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return resp.Request.URL.String()
}
