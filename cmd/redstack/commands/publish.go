package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/redstack/cmd/redstack/handlers"
)

// Publish returns the command that uploads the plan document to S3.
func Publish(opts *handlers.Options) *cobra.Command {
	po := handlers.PublishOptions{}
	var noCreate bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the plan document to an S3 bucket",
		Long: `Compose the deployment and upload the plan document to
s3://<bucket>/plans/<stack>/<plan-id>.<ext>.

Credentials come from the default AWS credential chain. The bucket is
created if it does not exist, unless --no-create-bucket is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			po.CreateBucket = !noCreate
			return handlers.Publish(cmd.Context(), *opts, po)
		},
	}

	cmd.Flags().StringVar(&po.Bucket, "bucket", "", "Bucket name (default: <stack>-plans)")
	cmd.Flags().StringVar(&po.Endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().StringVar(&po.Region, "region", "", "Bucket region (default: from AWS config)")
	cmd.Flags().BoolVar(&po.PathStyle, "path-style", false, "Use path-style addressing")
	cmd.Flags().StringSliceVarP(&po.Formats, "format", "f", []string{"json"}, "Document formats: json, yaml, hcl (comma-separated)")
	cmd.Flags().BoolVar(&noCreate, "no-create-bucket", false, "Fail if the bucket does not exist")

	return cmd
}
