package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/redstack/internal/export"
	"github.com/imamik/redstack/internal/util/async"
	"github.com/imamik/redstack/internal/util/naming"
	"github.com/imamik/redstack/internal/util/retry"
)

// ObjectStore is the subset of Client used by the Publisher.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	CreateBucket(ctx context.Context, bucket string) error
	PutObject(ctx context.Context, bucket, key, contentType string, data []byte, metadata map[string]string) error
}

// Location is where a published document was stored.
type Location struct {
	Bucket string
	Key    string
}

// URI returns the s3:// form of the location.
func (l Location) URI() string {
	return fmt.Sprintf("s3://%s/%s", l.Bucket, l.Key)
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithCreateBucket controls whether a missing bucket is created. Default true.
func WithCreateBucket(create bool) PublisherOption {
	return func(p *Publisher) { p.createBucket = create }
}

// WithRetry overrides the upload retry policy.
func WithRetry(opts ...retry.Option) PublisherOption {
	return func(p *Publisher) { p.retry = opts }
}

// WithOnRetry is called before each upload retry.
func WithOnRetry(fn func(attempt int, delay time.Duration, err error)) PublisherOption {
	return func(p *Publisher) { p.onRetry = fn }
}

// Publisher uploads plan documents to a bucket.
type Publisher struct {
	store        ObjectStore
	bucket       string
	createBucket bool
	retry        []retry.Option
	onRetry      func(attempt int, delay time.Duration, err error)
}

// NewPublisher creates a Publisher writing to bucket.
func NewPublisher(store ObjectStore, bucket string, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		store:        store,
		bucket:       bucket,
		createBucket: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish encodes doc in format f and stores it at
// plans/<stack>/<planID>.<ext>.
func (p *Publisher) Publish(ctx context.Context, doc *export.Document, f export.Format) (Location, error) {
	locs, err := p.PublishAll(ctx, doc, f)
	if err != nil {
		return Location{}, err
	}
	return locs[0], nil
}

// PublishAll stores doc once per format. The bucket is checked once, then
// the uploads run concurrently. Locations are returned in format order.
func (p *Publisher) PublishAll(ctx context.Context, doc *export.Document, formats ...export.Format) ([]Location, error) {
	payloads := make([][]byte, len(formats))
	for i, f := range formats {
		data, err := export.Encode(doc, f)
		if err != nil {
			return nil, err
		}
		payloads[i] = data
	}

	if err := p.ensureBucket(ctx); err != nil {
		return nil, err
	}

	locs := make([]Location, len(formats))
	tasks := make([]async.Task, len(formats))
	for i, f := range formats {
		locs[i] = Location{Bucket: p.bucket, Key: naming.PlanObjectKey(doc.Stack, doc.PlanID, f.Extension())}
		tasks[i] = async.Task{
			Name: string(f),
			Func: func(ctx context.Context) error {
				return p.upload(ctx, doc, locs[i], f.ContentType(), payloads[i])
			},
		}
	}

	if err := async.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to publish plan %s: %w", doc.PlanID, err)
	}
	return locs, nil
}

func (p *Publisher) upload(ctx context.Context, doc *export.Document, loc Location, contentType string, data []byte) error {
	metadata := map[string]string{
		"stack":   doc.Stack,
		"plan-id": doc.PlanID,
		"digest":  doc.Digest,
	}

	opts := append([]retry.Option{retry.WithRetryIf(isRetryable)}, p.retry...)
	if p.onRetry != nil {
		opts = append(opts, retry.WithOnRetry(p.onRetry))
	}
	return retry.WithExponentialBackoff(ctx, func(ctx context.Context) error {
		return p.store.PutObject(ctx, loc.Bucket, loc.Key, contentType, data, metadata)
	}, opts...)
}

func (p *Publisher) ensureBucket(ctx context.Context) error {
	exists, err := p.store.BucketExists(ctx, p.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if !p.createBucket {
		return fmt.Errorf("bucket %s does not exist", p.bucket)
	}
	return p.store.CreateBucket(ctx, p.bucket)
}
