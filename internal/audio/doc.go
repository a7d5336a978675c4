// Package audio embeds cover artwork into MP3 files via an external
// encoder and verifies the result before anything is replaced.
//
// # Encoder Resolution
//
// The encoder binary is located once per run:
//
//	encoder, err := audio.ResolveEncoder(settings.EncoderPath)
//
// With no explicit override, ffmpeg is preferred and avconv is the
// fallback. A missing encoder is a setup error reported before any
// file is touched.
//
// # Embedding
//
// The Embedder re-muxes one audio file per call:
//
//	embedder := audio.NewEmbedder(encoder)
//	err := embedder.Apply(ctx, job)
//
// The audio stream is copied, not re-encoded. Output goes to a
// temporary file beside the original, which is only renamed over the
// original after verification.
//
// # Verification
//
// VerifyFrontCover parses the ID3v2 tag of the encoder's output and
// requires an attached picture marked as the front cover:
//
//	err := audio.VerifyFrontCover(tmpPath)
//
// An encoder that exits zero but produces an empty or coverless file
// therefore fails the job instead of corrupting the original.
package audio
