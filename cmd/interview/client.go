package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/dto"

	"github.com/google/uuid"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// apiError is a non-2xx answer; Message is safe to show the respondent.
type apiError struct {
	Code    int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

type client struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *client) CreateSurvey(req dto.CreateSurveyRequest) (uuid.UUID, error) {
	var res envelope[dto.CreateSurveyResponse]
	if err := c.sendJSON(http.MethodPost, "/survey/v1", req, &res); err != nil {
		return uuid.Nil, err
	}
	return res.Data.Id, nil
}

func (c *client) State(id uuid.UUID) (*dto.InterviewState, error) {
	var res envelope[dto.InterviewState]
	if err := c.sendJSON(http.MethodGet, "/survey/v1/"+id.String()+"/state", nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *client) Turn(id uuid.UUID, content string) (*dto.TurnResponse, error) {
	var res envelope[dto.TurnResponse]
	body := dto.SubmitTurnRequest{Content: content}
	if err := c.sendJSON(http.MethodPost, "/survey/v1/"+id.String()+"/turn", body, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *client) VoiceTurn(id uuid.UUID, audioPath string) (*dto.TurnResponse, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("audio", filepath.Base(audioPath))
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(audio); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/survey/v1/"+id.String()+"/voice", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var res envelope[dto.TurnResponse]
	if err := c.do(req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *client) sendJSON(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 300 {
		var failed envelope[any]
		if err := json.Unmarshal(raw, &failed); err != nil || failed.Message == "" {
			return &apiError{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &apiError{Code: resp.StatusCode, Message: failed.Message}
	}

	return json.Unmarshal(raw, out)
}
