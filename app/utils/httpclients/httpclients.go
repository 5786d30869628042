package httpclients

import (
	"time"

	"resty.dev/v3"

	"abled.ai/abled-api-gateway/app/utils/logger"
)

const defaultTimeout = 60 * time.Second

// Init prepares shared client state. Individual clients register
// themselves through their own Init functions.
func Init() {}

// NewClient builds a resty client with the shared defaults. The name is
// attached to every log line so upstream failures can be attributed.
func NewClient(name string) *resty.Client {
	client := resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("User-Agent", "abled-api-gateway/"+name)
	client.AddResponseMiddleware(func(c *resty.Client, res *resty.Response) error {
		if res.IsError() {
			logger.GetLogger().WithFields(map[string]interface{}{
				"client": name,
				"status": res.StatusCode(),
				"url":    res.Request.URL,
			}).Warn("upstream returned error status")
		}
		return nil
	})
	return client
}
