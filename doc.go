/*
Package cratemon provides CLI tooling to release a multi-package Rust
workspace.

The primary goal of cratemon is to keep the versions of tightly coupled
packages in lockstep: one command validates the workspace, rewrites every
manifest for a release, publishes the packages in dependency order and
manages the release tag.
*/
package cratemon
