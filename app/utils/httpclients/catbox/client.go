package catbox

import (
	"context"
	"fmt"
	"io"
	"strings"

	"resty.dev/v3"

	"abled.ai/abled-api-gateway/app/utils/httpclients"
	"abled.ai/abled-api-gateway/config/environment_variables"
)

var RestyClient *resty.Client

func Init() {
	RestyClient = httpclients.NewClient("CatboxClient")
}

// Client uploads note attachments to the catbox file host and returns
// the public URL for the stored file.
type Client struct {
	apiURL string
}

func NewClient() *Client {
	return &Client{
		apiURL: environment_variables.EnvironmentVariables.CATBOX_API_URL,
	}
}

func (c *Client) UploadFile(ctx context.Context, filename string, content io.Reader) (string, error) {
	if RestyClient == nil {
		return "", fmt.Errorf("catbox client not initialized")
	}

	resp, err := RestyClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"reqtype": "fileupload",
		}).
		SetFileReader("fileToUpload", filename, io.NopCloser(content)).
		Post(c.apiURL)
	if err != nil {
		return "", fmt.Errorf("catbox upload: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("catbox upload: unexpected status %d", resp.StatusCode())
	}

	url := strings.TrimSpace(resp.String())
	if !strings.HasPrefix(url, "http") || !strings.Contains(url, "catbox") {
		return "", fmt.Errorf("catbox upload: unexpected response body")
	}
	return url, nil
}
