// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// clientConfig holds resolved configuration for the Foundry client.
type clientConfig struct {
	httpClient   *http.Client
	apiVersion   string
	apiKey       string
	headers      map[string]string
	credential   azcore.TokenCredential
	pollInterval time.Duration
}

// Option configures a Foundry [Client].
type Option func(*clientConfig)

// WithHTTPClient provides a custom http.Client for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithAPIVersion overrides the api-version query parameter sent on every call.
func WithAPIVersion(version string) Option {
	return func(c *clientConfig) { c.apiVersion = version }
}

// WithAPIKey uses key-based authentication instead of Entra ID tokens.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) { c.apiKey = key }
}

// WithHeaders adds custom headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) { c.headers = headers }
}

// WithCredential sets the token credential used for Entra ID authentication.
// When set, the client obtains and refreshes tokens automatically.
func WithCredential(cred azcore.TokenCredential) Option {
	return func(c *clientConfig) { c.credential = cred }
}

// WithPollInterval sets how often a run's status is re-read while waiting
// for it to finish. Defaults to one second.
func WithPollInterval(d time.Duration) Option {
	return func(c *clientConfig) { c.pollInterval = d }
}
