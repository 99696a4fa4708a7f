// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the lifecycle that loads bundles, builds
// the DOM property registry and answers queries against it, decoupled from
// any specific entrypoint like a CLI.
package app
