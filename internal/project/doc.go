// Package project reads and writes the install record kept at
// .simplespec/install.yaml. The record lists the runtimes installed into a
// project, the install mode used and the version of the tool that wrote it.
package project
