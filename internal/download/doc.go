// Package download runs the external downloader over a batch of
// targets.
//
// # Downloader
//
// Downloader is the seam between the pipeline and the tool that does
// the fetching; the real implementation shells out to yt-dlp, tests
// substitute their own.
//
// # Basic Usage
//
//	dl := download.NewYtDlp("yt-dlp", configPath)
//	err := dl.Download(ctx, targets, inputDir, func(line string) {
//	    fmt.Println(line)
//	})
//
// The tool is invoked once for the whole batch with --paths pointing at
// the library's input directory, and --config-location when the library
// carries a yt-dlp.conf. Its output is streamed line by line to the
// caller, which decides how to surface it.
package download
