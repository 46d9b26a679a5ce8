package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mailtpl "github.com/oksasatya/yomu-engine/pkg/mailer/templates"
)

// ErrMalformedJob marks a job that can never be delivered and should be dropped.
var ErrMalformedJob = errors.New("malformed email job")

// DecodeJob parses a queued job and checks it has a recipient and content.
func DecodeJob(body []byte) (EmailJob, error) {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return EmailJob{}, fmt.Errorf("%w: %v", ErrMalformedJob, err)
	}
	if strings.TrimSpace(job.To) == "" {
		return EmailJob{}, fmt.Errorf("%w: missing recipient", ErrMalformedJob)
	}
	if job.Template == "" && job.Subject == "" {
		return EmailJob{}, fmt.Errorf("%w: neither template nor subject set", ErrMalformedJob)
	}
	return job, nil
}

// Deliver renders the job (when it names a template) and sends it. Render failures
// are reported as ErrMalformedJob.
func Deliver(ctx context.Context, s Sender, job EmailJob) error {
	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		var err error
		subject, text, html, err = mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedJob, err)
		}
	}
	return s.Send(ctx, job.To, subject, text, html)
}
