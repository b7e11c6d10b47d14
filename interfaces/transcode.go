// golos-labs/golos-bot/interfaces/transcode.go
package interfaces

import "context"

// Transcoder converts a complete voice clip between audio codecs.
//
// Both paths are temporary files owned by the caller: the caller creates
// the source file, reserves the destination name, and deletes both when
// the pipeline run ends. Unlike the remote adapters, transcoding failure
// is an explicit error — the pipeline aborts rather than feeding garbage
// audio onward.
type Transcoder interface {
	Transcode(ctx context.Context, srcPath, dstPath string) error
}
