// Package api содержит HTTP-клиент для взаимодействия с сервером API пользователей.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client,
// предоставляя удобные методы для отправки JSON-запросов (POST/GET/PUT/DELETE)
// с авторизацией через Bearer токен.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - Пустое тело ответа (EOF при декодировании) не считается ошибкой.
//   - При ошибочных ответах (не 2xx) возвращается ошибка с текстом тела ответа
//     (если тело пустое — используется res.Status).
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client реализует HTTP-клиент для общения с сервером.
//
// Поля:
//   - baseURL: базовый адрес сервера без завершающего слэша.
//   - http: настроенный http.Client (таймаут).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// baseURL — базовый адрес сервера (например: "http://127.0.0.1:8080").
// Завершающий "/" обрезается, таймаут запросов — 10 секунд.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// readAPIErrorBody читает тело ответа сервера и возвращает ошибку с текстом тела.
//
// Используется в случае HTTP-ошибок (не 2xx). Если тело пустое —
// возвращает error со строкой res.Status.
func readAPIErrorBody(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return errors.New(msg)
}

// decodeJSONOrOK декодирует JSON из r в resp.
//
// Если resp == nil — функция ничего не делает и возвращает nil.
// Пустое тело (io.EOF) не считается ошибкой.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// do выполняет HTTP-запрос с JSON-телом и декодирует JSON-ответ.
//
// method — HTTP-метод; path — путь относительно baseURL;
// req — объект для сериализации (nil = без тела);
// resp — приёмник ответа (nil = ответ не декодируется);
// authToken — access токен для заголовка Authorization (пустой = без него).
func (c *Client) do(method, path string, req any, resp any, authToken string) error {
	var buf bytes.Buffer
	if req != nil {
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
	}

	r, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		r.Header.Set("Authorization", "Bearer "+authToken)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	// 204/пустое тело — ок
	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeJSONOrOK(res.Body, resp)
}

// PostJSON выполняет POST-запрос к серверу, сериализуя req в JSON.
func (c *Client) PostJSON(path string, req any, resp any, authToken string) error {
	return c.do(http.MethodPost, path, req, resp, authToken)
}

// GetJSON выполняет GET-запрос к серверу и (опционально) декодирует JSON-ответ.
func (c *Client) GetJSON(path string, resp any, authToken string) error {
	return c.do(http.MethodGet, path, nil, resp, authToken)
}

// PutJSON выполняет PUT-запрос к серверу, сериализуя req в JSON.
func (c *Client) PutJSON(path string, req any, resp any, authToken string) error {
	return c.do(http.MethodPut, path, req, resp, authToken)
}

// DeleteJSON выполняет DELETE-запрос к серверу.
func (c *Client) DeleteJSON(path string, resp any, authToken string) error {
	return c.do(http.MethodDelete, path, nil, resp, authToken)
}

// PostForm выполняет POST-запрос с телом application/x-www-form-urlencoded.
//
// Используется для эндпоинта POST /token, который принимает форму,
// а не JSON.
func (c *Client) PostForm(path string, form url.Values, resp any) error {
	r, err := http.NewRequest(http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	return decodeJSONOrOK(res.Body, resp)
}
