package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/imagezebra/imagezebra-go/internal/client"
)

// ErrUpload means the form POST to the storage endpoint was rejected, e.g.
// because the presigned fields had already expired.
var ErrUpload = errors.New("upload failed")

// Upload performs the multipart form POST described by a presigned descriptor,
// sending data as the image payload. The presigned fields are written in the
// order they were issued and the file part comes strictly last; the storage
// policy rejects any other layout. Expiry of the descriptor is enforced by the
// storage provider, not checked here.
func Upload(ctx context.Context, httpc *http.Client, p *client.PresignedUpload, filename string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty payload", ErrUpload)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range p.Fields {
		if err := w.WriteField(f.Key, f.Value); err != nil {
			return fmt.Errorf("write form field %q: %w", f.Key, err)
		}
	}

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	hdr.Set("Content-Type", "image/jpeg")
	part, err := w.CreatePart(hdr)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write file part: %w", err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpload, err)
	}
	defer resp.Body.Close()

	// S3 form POSTs answer 204 by default, or a 3xx when the policy asks for
	// a redirect.
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: storage returned status %d", ErrUpload, resp.StatusCode)
	}
	return nil
}
