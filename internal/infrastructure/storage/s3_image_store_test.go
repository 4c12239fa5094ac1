package storage_test

import (
	"testing"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/images/1-a.png",
		storage.PublicURL("https://cdn.example.com/", "bkt", "eu-north-1", "images/1-a.png", "https://ignored"))
	assert.Equal(t, "http://localhost:4566/bkt/images/1-a.png",
		storage.PublicURL("", "bkt", "eu-north-1", "images/1-a.png", "http://localhost:4566/bkt/images/1-a.png"))
	assert.Equal(t, "https://bkt.s3.eu-north-1.amazonaws.com/images/1-a.png",
		storage.PublicURL("", "bkt", "eu-north-1", "images/1-a.png", ""))
}

func TestKeyFromURL(t *testing.T) {
	cases := map[string]struct {
		url, base string
		want      string
	}{
		"virtual-hosted": {url: "https://bkt.s3.eu-north-1.amazonaws.com/images/1-a.png", want: "images/1-a.png"},
		"path-style":     {url: "http://localhost:4566/bkt/images/1-a.png", want: "images/1-a.png"},
		"base url":       {url: "https://cdn.example.com/images/1-a.png", base: "https://cdn.example.com", want: "images/1-a.png"},
		"escapada":       {url: "https://bkt.s3.amazonaws.com/images/1-a%20b.png", want: "images/1-a b.png"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := storage.KeyFromURL(tc.url, "bkt", tc.base)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKeyFromURL_Rechaza(t *testing.T) {
	for _, u := range []string{"", "no-es-url", "https://bkt.s3.amazonaws.com/otros/x.png", "https://bkt.s3.amazonaws.com/"} {
		_, err := storage.KeyFromURL(u, "bkt", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "url %q", u)
	}
}
