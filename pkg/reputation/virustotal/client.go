// Package virustotal provides a reputation.Client implementation backed by the
// VirusTotal v3 API.
package virustotal

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"secondchance/pkg/domain"
	"secondchance/pkg/reputation"
	"secondchance/pkg/serrors"
	"strings"

	"github.com/go-faster/jx"
)

// DefaultBaseURL is the root of the public VirusTotal v3 API.
const DefaultBaseURL = "https://www.virustotal.com/api/v3"

// MaxResponseBytes bounds the URL report read from VirusTotal.
const MaxResponseBytes = 4 << 20

// Client talks to the VirusTotal REST API and fulfills the reputation.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to VirusTotal
	token      string       // token is sent in the x-apikey header
	baseURL    string
}

// EncodeID returns the URL identifier VirusTotal expects: the unpadded
// URL-safe base64 encoding of the URL.
func EncodeID(URL string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(URL))
}

// Classify fetches the latest analysis of the host.
func (c *Client) Classify(ctx context.Context, host string) (domain.ClassificationStats, error) {
	// https://docs.virustotal.com/reference/url-info
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/urls/"+EncodeID(host), nil)
	if err != nil {
		return domain.ClassificationStats{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-apikey", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ClassificationStats{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return domain.ClassificationStats{}, fmt.Errorf("could not read response body: %w", err)
	}
	if len(b) > MaxResponseBytes {
		return domain.ClassificationStats{},
			fmt.Errorf("response body is larger than %d bytes", MaxResponseBytes)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ClassificationStats{}, serrors.With(serrors.ErrNotFound, "url %s is unknown to virustotal", host)
	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.ClassificationStats{},
			serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode != http.StatusOK:
		return domain.ClassificationStats{},
			fmt.Errorf("get url report failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	stats, err := ParseAnalysisStats(b)
	if err != nil {
		return domain.ClassificationStats{}, fmt.Errorf("could not decode response: %w", err)
	}

	return stats, nil
}

// ParseAnalysisStats extracts data.attributes.last_analysis_stats from a URL
// report. Every counter must be present and non-negative.
func ParseAnalysisStats(body []byte) (domain.ClassificationStats, error) {
	var stats domain.ClassificationStats
	var hasHarmless, hasMalicious, hasSuspicious bool

	readCounter := func(d *jx.Decoder, dst *int, seen *bool) error {
		n, err := d.Int()
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("negative counter %d", n)
		}
		*dst = n
		*seen = true

		return nil
	}

	d := jx.DecodeBytes(body)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "data" {
			return d.Skip()
		}

		return d.Obj(func(d *jx.Decoder, key string) error {
			if key != "attributes" {
				return d.Skip()
			}

			return d.Obj(func(d *jx.Decoder, key string) error {
				if key != "last_analysis_stats" {
					return d.Skip()
				}

				return d.Obj(func(d *jx.Decoder, key string) error {
					switch key {
					case "harmless":
						return readCounter(d, &stats.Harmless, &hasHarmless)
					case "malicious":
						return readCounter(d, &stats.Malicious, &hasMalicious)
					case "suspicious":
						return readCounter(d, &stats.Suspicious, &hasSuspicious)
					default:
						return d.Skip()
					}
				})
			})
		})
	})
	if err != nil {
		return domain.ClassificationStats{}, err
	}
	if !hasHarmless || !hasMalicious || !hasSuspicious {
		return domain.ClassificationStats{}, errors.New("last_analysis_stats is incomplete")
	}

	return stats, nil
}

// Ensure Client conforms to the reputation.Client interface at compile time.
var _ reputation.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API token.
// An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}
