// Package audio reads and writes tag containers of media files.
//
// # Reading
//
// ReadTags pulls the embedded record out of an MP3's ID3v2 frames,
// along with a recording date when the container has one precise
// enough for chronological shelving:
//
//	tags, err := audio.ReadTags("/in/song.mp3")
//	raw, ok := tags.Record.Get(tag.Title)
//
// # Writing
//
// The Tagger writes a finalized record back, with the standardized
// display title in place of the raw one:
//
//	tagger := audio.NewTagger(cfg.NormalizeArtwork, cfg.ArtworkMaxEdge)
//	err := tagger.WriteTags("/in/song.mp3", res.Record, res.Title)
//
// # Artwork
//
// NormalizeArtwork downsizes embedded cover art and re-encodes it as
// JPEG. The Tagger applies it to the front cover during writes when
// enabled.
package audio
