package customHttpClient

import (
	"net/http"

	"github.com/akolanti/ResumeRAG/internal/config"
)

// one shared transport so the LLM and embedding clients reuse connections
var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

func GetPooledClient() *http.Client {
	return &http.Client{Transport: customTransport}
}
