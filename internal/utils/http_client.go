// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so adapters can add behavior without
// touching the upstream type.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL with the given request
// timeout. A baseURL without a scheme is treated as plain http.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if baseURL != "" && !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
