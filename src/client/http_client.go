package client

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

type HttpClientInterface interface {
	Get(url string, headers map[string]string) ([]byte, error)
	Post(url string, message []byte, headers map[string]string) ([]byte, error)
}

type HttpClient struct {
	Timeout time.Duration
}

func (h *HttpClient) Post(url string, message []byte, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest("POST", url, bytes.NewReader(message))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	return h.do(req, url)
}

func (h *HttpClient) Get(url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	return h.do(req, url)
}

func (h *HttpClient) do(req *http.Request, url string) ([]byte, error) {
	timeout := h.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}

	client := &http.Client{
		Timeout: timeout,
	}

	res, err := client.Do(req)

	if err != nil {
		return nil, err
	}

	responseBody, err := io.ReadAll(res.Body)
	defer res.Body.Close()

	if err != nil {
		return nil, err
	}

	if res.StatusCode >= 400 {
		return responseBody, errors.New(fmt.Sprintf(
			"Request [%s] failed with error code: %d, body: %s", url, res.StatusCode, string(responseBody),
		))
	}

	return responseBody, nil
}
