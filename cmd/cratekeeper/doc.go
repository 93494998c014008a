// Package main hosts the cratekeeper CLI entrypoint and command graph.
//
// The cobra command tree resolves library arguments (paths or aliases),
// layers flag overrides onto the library configuration and drives the
// processing pipeline. Prompting, tables and event rendering live here;
// the pipeline itself is internal/process.
package main
