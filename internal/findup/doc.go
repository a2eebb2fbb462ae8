// Package findup locates named entries in the directories enclosing a starting
// point.
//
// It builds a DirectoryChain from the start directory up to a top directory
// (the home directory by default), checks each directory for the requested
// targets through the FileSystem collaborator, and renders matches either as
// absolute paths or abbreviated with a leading tilde. CommandBuilder exposes the
// search as a Cobra command.
package findup
