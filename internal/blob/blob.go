// Package blob provides the file storage collaborator behind card
// attachments. The engine only ever talks to the Store interface declared by
// the card domain: upload a path, delete a path, resolve a public URL.
package blob

import "errors"

// ErrInvalidURL indicates a file URL that this store did not produce.
var ErrInvalidURL = errors.New("file url does not belong to this store")
