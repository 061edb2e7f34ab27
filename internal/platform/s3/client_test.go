package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient creates a Client backed by a test HTTP server.
// The handler receives real S3 XML-protocol requests.
func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := s3.New(s3.Options{
		Region:       "eu-west-1",
		BaseEndpoint: aws.String(server.URL),
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""),
		Retryer:      aws.NopRetryer{},
	})
	return &Client{s3: client, region: "eu-west-1"}
}

// xmlResponse writes an S3-style XML response.
func xmlResponse(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

func xmlError(code string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>test</Message></Error>`, code)
}

func TestNewClient(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		opts Options
	}{
		{"static credentials", Options{Endpoint: "https://s3.example.test", Region: "eu-west-1", AccessKey: "a", SecretKey: "b"}},
		{"default chain", Options{Region: "eu-west-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := NewClient(context.Background(), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.opts.Region, client.region)
		})
	}
}

func TestCreateBucket(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{"created", http.StatusOK, `<?xml version="1.0" encoding="UTF-8"?><CreateBucketResult/>`, false},
		{"already owned", http.StatusConflict, xmlError("BucketAlreadyOwnedByYou"), false},
		{"taken by someone else", http.StatusConflict, xmlError("BucketAlreadyExists"), true},
		{"denied", http.StatusForbidden, xmlError("AccessDenied"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				xmlResponse(w, tt.status, tt.body)
			}))

			err := client.CreateBucket(context.Background(), "redmine-plans")
			if tt.wantErr {
				assert.ErrorContains(t, err, "redmine-plans")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBucketExists(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		status  int
		want    bool
		wantErr bool
	}{
		{"exists", http.StatusOK, true, false},
		{"missing", http.StatusNotFound, false, false},
		{"forbidden", http.StatusForbidden, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodHead, r.Method)
				w.WriteHeader(tt.status)
			}))

			got, err := client.BucketExists(context.Background(), "redmine-plans")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPutAndGetObject(t *testing.T) {
	t.Parallel()
	var (
		mu      sync.Mutex
		objects = map[string][]byte{}
		types   = map[string]string{}
		meta    = map[string]string{}
	)
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.Method {
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			objects[r.URL.Path] = body
			types[r.URL.Path] = r.Header.Get("Content-Type")
			meta[r.URL.Path] = r.Header.Get("X-Amz-Meta-Plan-Id")
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			body, ok := objects[r.URL.Path]
			if !ok {
				xmlResponse(w, http.StatusNotFound, xmlError("NoSuchKey"))
				return
			}
			_, _ = w.Write(body)
		}
	}))

	ctx := context.Background()
	require.NoError(t, client.PutObject(ctx, "bucket", "plans/a.json", "application/json", []byte(`{"a":1}`), map[string]string{"plan-id": "abc"}))

	got, err := client.GetObject(ctx, "bucket", "plans/a.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	mu.Lock()
	assert.Equal(t, "application/json", types["/bucket/plans/a.json"])
	assert.Equal(t, "abc", meta["/bucket/plans/a.json"])
	mu.Unlock()

	_, err = client.GetObject(ctx, "bucket", "plans/missing.json")
	assert.ErrorContains(t, err, "plans/missing.json")
}

func TestListObjects(t *testing.T) {
	t.Parallel()
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "plans/RedmineStack/", r.URL.Query().Get("prefix"))
		xmlResponse(w, http.StatusOK, `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult>
  <Name>bucket</Name>
  <Contents><Key>plans/RedmineStack/1.json</Key></Contents>
  <Contents><Key>plans/RedmineStack/2.yaml</Key></Contents>
</ListBucketResult>`)
	}))

	keys, err := client.ListObjects(context.Background(), "bucket", "plans/RedmineStack/")
	require.NoError(t, err)
	assert.Equal(t, []string{"plans/RedmineStack/1.json", "plans/RedmineStack/2.yaml"}, keys)
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()
	wrap := func(err error) error { return fmt.Errorf("op: %w", err) }

	assert.False(t, isBucketAlreadyOwnedByYou(nil))
	assert.True(t, isBucketAlreadyOwnedByYou(wrap(&s3types.BucketAlreadyOwnedByYou{})))
	assert.True(t, isBucketAlreadyOwnedByYou(wrap(&smithy.GenericAPIError{Code: "BucketAlreadyOwnedByYou"})))
	assert.False(t, isBucketAlreadyOwnedByYou(wrap(&smithy.GenericAPIError{Code: "BucketAlreadyExists"})))

	assert.False(t, isNotFoundError(nil))
	assert.True(t, isNotFoundError(wrap(&s3types.NoSuchBucket{})))
	assert.True(t, isNotFoundError(wrap(&s3types.NotFound{})))
	assert.True(t, isNotFoundError(wrap(&smithy.GenericAPIError{Code: "404"})))
	assert.False(t, isNotFoundError(errors.New("boom")))

	assert.False(t, isRetryable(nil))
	assert.True(t, isRetryable(errors.New("connection reset")))
	assert.True(t, isRetryable(&smithy.GenericAPIError{Code: "InternalError", Fault: smithy.FaultServer}))
	assert.False(t, isRetryable(&smithy.GenericAPIError{Code: "AccessDenied", Fault: smithy.FaultClient}))
}
