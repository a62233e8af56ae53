// Package debug holds diagnostic switches read from the environment once
// at start up.
//
//	OMI_DEBUG_PARSE     trace decoding
//	OMI_DEBUG_ENCODE    trace encoding
//	OMI_DEBUG_VALIDATE  trace validation failures
//	OMI_DEBUG_MERGE     trace merge conflicts
package debug
