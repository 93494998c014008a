// Package process runs the pipeline steps against a library: download,
// tag, deposit and clean.
//
// # Steps
//
// Each step works through the library's input directory (or, for
// clean, the whole library tree) and reports progress through an event
// callback. Per-file problems are reported and counted but never stop
// the run; only configuration errors and a cancelled context do.
//
//   - download resolves the queue into URLs and hands them to yt-dlp
//   - tag parses embedded titles and standardizes tags and file names
//   - deposit moves files into the organized target tree
//   - clean removes directories the deposit step emptied out
//
// # Basic Usage
//
//	lib, err := library.Open("techno")
//	if err != nil {
//		return err
//	}
//
//	proc, err := process.New(lib, download.NewYtDlp("yt-dlp", ""), nil, func(e process.Event) {
//		fmt.Println(e.Message)
//	})
//	if err != nil {
//		return err
//	}
//
//	steps, err := lib.Settings.StepList()
//	if err != nil {
//		return err
//	}
//	sum, err := proc.Run(ctx, steps)
//
// # Interaction
//
// Interactive runs pass an Interaction whose methods answer the
// questions the steps ask: whether to apply a tag proposal, which
// search result to download, whether a downloaded file stays, whether
// an occupied destination may be overwritten. A nil Interaction gives
// the careful answer to each so unattended runs never block: proposals
// are declined unless auto-tag is on, conflicts are skipped unless
// auto-overwrite is on, and downloads are kept.
package process
