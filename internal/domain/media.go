package domain

import "context"

// MediaStore uploads raw image bytes to an external media host and
// returns a durable, publicly accessible URL. No retries are attempted;
// a failed upload fails the request.
type MediaStore interface {
	Upload(ctx context.Context, upload *ImageUpload) (string, error)
}
