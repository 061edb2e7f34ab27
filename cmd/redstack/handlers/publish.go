package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/redstack/internal/export"
	"github.com/imamik/redstack/internal/platform/s3"
	"github.com/imamik/redstack/internal/util/naming"
)

// PublishOptions configure where plans are stored.
type PublishOptions struct {
	Bucket       string
	Endpoint     string
	Region       string
	PathStyle    bool
	CreateBucket bool
	Formats      []string
}

// newObjectStore creates the store used by Publish - can be replaced in tests.
var newObjectStore = func(ctx context.Context, po PublishOptions) (s3.ObjectStore, error) {
	return s3.NewClient(ctx, s3.Options{
		Endpoint:  po.Endpoint,
		Region:    po.Region,
		PathStyle: po.PathStyle,
	})
}

// Publish composes and exports the plan and uploads one document per
// format. The bucket defaults to one derived from the stack name.
func Publish(ctx context.Context, opts Options, po PublishOptions) error {
	if len(po.Formats) == 0 {
		po.Formats = []string{string(export.FormatJSON)}
	}
	formats := make([]export.Format, 0, len(po.Formats))
	for _, name := range po.Formats {
		f, err := export.ParseFormat(name)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}

	plan, err := composePlan(ctx, opts)
	if err != nil {
		return err
	}
	doc, err := export.Export(plan.Stack, plan.Graph)
	if err != nil {
		return err
	}

	bucket := po.Bucket
	if bucket == "" {
		bucket = naming.PlanBucket(doc.Stack)
	}

	store, err := newObjectStore(ctx, po)
	if err != nil {
		return err
	}
	publisher := s3.NewPublisher(store, bucket,
		s3.WithCreateBucket(po.CreateBucket),
		s3.WithOnRetry(func(attempt int, delay time.Duration, err error) {
			fmt.Fprintf(stderr, "Upload attempt %d failed, retrying in %v: %v\n", attempt, delay, err)
		}),
	)

	locs, err := publisher.PublishAll(ctx, doc, formats...)
	if err != nil {
		return err
	}
	for _, loc := range locs {
		fmt.Fprintf(stdout, "Published plan %s to %s\n", doc.PlanID, loc.URI())
	}
	return nil
}
