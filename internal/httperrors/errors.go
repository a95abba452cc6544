// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly descriptions of failed HTTP exchanges.
package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Category classifies a transport failure.
type Category string

const (
	Timeout           Category = "timeout"
	DNS               Category = "dns"
	ConnectionRefused Category = "connection_refused"
	TLS               Category = "tls"
	Generic           Category = "generic"
)

// Description is a classified transport failure ready for display.
type Description struct {
	Category Category
	Title    string
	Hints    []string
}

// Describe converts technical HTTP/network errors into user-friendly descriptions.
// action completes the sentence "... while <action>", e.g. "sending the update".
func Describe(err error, action string) Description {
	host := hostOf(err)

	switch {
	case isTimeoutError(err):
		return Description{
			Category: Timeout,
			Title:    fmt.Sprintf("⏱️  Connection timeout while %s", action),
			Hints: []string{
				"Slow internet connection",
				"The API is under heavy load",
				"Network firewall is blocking the connection",
			},
		}
	case isDNSError(err):
		return Description{
			Category: DNS,
			Title:    fmt.Sprintf("🌐 Cannot resolve %s while %s", host, action),
			Hints: []string{
				"Your internet connection is working",
				"The base_url setting is spelled correctly",
				"No DNS-level blocking (corporate firewall, VPN)",
			},
		}
	case isConnectionRefusedError(err):
		return Description{
			Category: ConnectionRefused,
			Title:    fmt.Sprintf("🚫 Connection refused by %s while %s", host, action),
			Hints: []string{
				"The service is temporarily down",
				"Firewall is blocking the connection",
				"Wrong server address or port",
			},
		}
	case isSSLError(err):
		return Description{
			Category: TLS,
			Title:    fmt.Sprintf("🔒 Secure connection to %s failed while %s", host, action),
			Hints: []string{
				"SSL/TLS certificate issue",
				"Network proxy interfering with HTTPS",
				"System clock is incorrect",
			},
		}
	}

	return Description{
		Category: Generic,
		Title:    fmt.Sprintf("❌ Cannot reach %s while %s", host, action),
		Hints: []string{
			"Your internet connection",
			"Whether the API is accessible from your network",
			"Firewall settings that might block HTTPS requests",
		},
	}
}

// Render writes d to w.
func Render(w io.Writer, d Description) {
	pterm.Fprintln(w, d.Title)
	pterm.Fprintln(w, "Please check:")
	for _, h := range d.Hints {
		pterm.Fprintln(w, "  • "+h)
	}
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "ssl") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// hostOf extracts the host of the failed request for messages.
func hostOf(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ExtractHostFromURL(urlErr.URL)
	}
	return "server"
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
