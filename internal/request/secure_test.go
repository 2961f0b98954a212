package request

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSecure_TLSConnection(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.TLS = &tls.ConnectionState{}

	// Act / Assert
	assert.True(t, DetectSecure(r))
}

func TestDetectSecure_Plain(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "http://example.test/", nil)

	// Act / Assert
	assert.False(t, DetectSecure(r))
}

func TestDetectSecure_EnvHint(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "on", value: "on", want: true},
		{name: "one", value: "1", want: true},
		{name: "off", value: "off", want: false},
		{name: "zero", value: "0", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			t.Setenv("HTTPS", tt.value)
			r := httptest.NewRequest(http.MethodGet, "http://example.test/", nil)

			// Act / Assert
			assert.Equal(t, tt.want, DetectSecure(r))
		})
	}
}

func TestDetectSecure_Headers(t *testing.T) {
	tests := []struct {
		name   string
		header string
		value  string
		want   bool
	}{
		{name: "x-forwarded-proto https", header: "X-Forwarded-Proto", value: "https", want: true},
		{name: "x-forwarded-proto mixed case", header: "X-Forwarded-Proto", value: "HTTPS", want: true},
		{name: "x-forwarded-proto http", header: "X-Forwarded-Proto", value: "http", want: false},
		{name: "forwarded first element", header: "Forwarded", value: `for=192.0.2.60;proto=https;by=203.0.113.43`, want: true},
		{name: "forwarded quoted proto", header: "Forwarded", value: `proto="https"`, want: true},
		{name: "forwarded later element ignored", header: "Forwarded", value: `proto=http, proto=https`, want: false},
		{name: "front-end-https", header: "Front-End-Https", value: "on", want: true},
		{name: "x-forwarded-ssl", header: "X-Forwarded-Ssl", value: "on", want: true},
		{name: "x-forwarded-ssl off", header: "X-Forwarded-Ssl", value: "off", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "http://example.test/", nil)
			r.Header.Set(tt.header, tt.value)

			// Act / Assert
			assert.Equal(t, tt.want, DetectSecure(r))
		})
	}
}

func TestDetectSecure_Port443(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "http://example.test/", nil)
	r.Host = "example.test:443"

	// Act / Assert
	assert.True(t, DetectSecure(r))
}

func TestDetectSecure_OtherPort(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "http://example.test/", nil)
	r.Host = "example.test:8080"

	// Act / Assert
	assert.False(t, DetectSecure(r))
}
