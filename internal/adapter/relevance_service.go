// Package adapter contains infrastructure adapters for the selectest CLI.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	m "selectest.dev/pkg/selectest/internal/model"
)

const tracerName = "selectest/adapter"

// RelevanceService queries historical file-to-test and file-to-task associations.
type RelevanceService interface {
	// GetTestMappings returns test files related to the changed files above threshold.
	GetTestMappings(ctx context.Context, threshold float64, changed m.ChangedFiles) ([]m.TestMapping, error)
	// GetTaskMappings returns tasks related to the changed files above threshold.
	GetTaskMappings(ctx context.Context, threshold float64, changed m.ChangedFiles) ([]m.TaskMapping, error)
}

// ServiceConfig holds the connection settings for the relevance service.
type ServiceConfig struct {
	URL       string `yaml:"url"`
	Project   string `yaml:"project"`
	AuthUser  string `yaml:"auth_user"`
	AuthToken string `yaml:"auth_token"`
}

// LoadServiceConfig reads a ServiceConfig from a YAML file.
func LoadServiceConfig(path m.Path) (ServiceConfig, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return ServiceConfig{}, fmt.Errorf("read service config %s: %w", path, err)
	}

	var config ServiceConfig
	if err := yaml.Unmarshal(content, &config); err != nil {
		return ServiceConfig{}, fmt.Errorf("parse service config %s: %w", path, err)
	}

	if config.URL == "" || config.Project == "" {
		return ServiceConfig{}, fmt.Errorf("service config %s: url and project are required", path)
	}

	return config, nil
}

// HTTPOption customizes an HTTPRelevanceService.
type HTTPOption func(*HTTPRelevanceService)

// WithRetryMax sets how many times a failed request is retried.
func WithRetryMax(retries int) HTTPOption {
	return func(s *HTTPRelevanceService) {
		if retries >= 0 {
			s.client.RetryMax = retries
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(s *HTTPRelevanceService) {
		if timeout > 0 {
			s.client.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryWait bounds the backoff between retries.
func WithRetryWait(minWait, maxWait time.Duration) HTTPOption {
	return func(s *HTTPRelevanceService) {
		s.client.RetryWaitMin = minWait
		s.client.RetryWaitMax = maxWait
	}
}

// HTTPRelevanceService talks to the relevance service over HTTP.
// Retries live here so the selection core never has to.
type HTTPRelevanceService struct {
	config ServiceConfig
	client *retryablehttp.Client
	tracer trace.Tracer
}

// NewHTTPRelevanceService constructs a client for the given service config.
func NewHTTPRelevanceService(config ServiceConfig, opts ...HTTPOption) *HTTPRelevanceService {
	client := retryablehttp.NewClient()
	client.Logger = slog.Default()

	service := &HTTPRelevanceService{
		config: config,
		client: client,
		tracer: otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

type testMappingsResponse struct {
	TestMappings []m.TestMapping `json:"test_mappings"`
}

type taskMappingsResponse struct {
	TaskMappings []m.TaskMapping `json:"task_mappings"`
}

// GetTestMappings implements RelevanceService.
func (s *HTTPRelevanceService) GetTestMappings(ctx context.Context, threshold float64, changed m.ChangedFiles) ([]m.TestMapping, error) {
	var response testMappingsResponse
	if err := s.get(ctx, "test-mappings", threshold, changed, &response); err != nil {
		return nil, err
	}

	return response.TestMappings, nil
}

// GetTaskMappings implements RelevanceService.
func (s *HTTPRelevanceService) GetTaskMappings(ctx context.Context, threshold float64, changed m.ChangedFiles) ([]m.TaskMapping, error) {
	var response taskMappingsResponse
	if err := s.get(ctx, "task-mappings", threshold, changed, &response); err != nil {
		return nil, err
	}

	return response.TaskMappings, nil
}

func (s *HTTPRelevanceService) get(ctx context.Context, resource string, threshold float64, changed m.ChangedFiles, out any) error {
	ctx, span := s.tracer.Start(ctx, "relevance."+resource, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.String("relevance.project", s.config.Project),
		attribute.Float64("relevance.threshold", threshold),
		attribute.Int("relevance.changed_files", len(changed)),
	)

	err := s.doGet(ctx, resource, threshold, changed, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

func (s *HTTPRelevanceService) doGet(ctx context.Context, resource string, threshold float64, changed m.ChangedFiles, out any) error {
	endpoint := fmt.Sprintf("%s/projects/%s/%s",
		strings.TrimRight(s.config.URL, "/"), url.PathEscape(s.config.Project), resource)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", resource, err)
	}

	query := url.Values{}
	query.Set("threshold", strconv.FormatFloat(threshold, 'f', -1, 64))
	query.Set("changed_files", strings.Join(changed.Strings(), ","))
	req.URL.RawQuery = query.Encode()

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if s.config.AuthUser != "" {
		req.AddCookie(&http.Cookie{Name: "auth_user", Value: s.config.AuthUser})
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: s.config.AuthToken})
	}

	slog.Debug("Querying relevance service", "resource", resource, "project", s.config.Project, "changedFiles", len(changed))

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", resource, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("request %s: unexpected status %s", resource, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}

	return nil
}
