// Package schemas embeds the JSON Schemas that AI replies are checked against.
package schemas

import _ "embed"

// ToneDetect is the schema for /tone-detect replies.
//
//go:embed tone_detect.schema.json
var ToneDetect string

// AIImprove is the schema for /ai-improve replies.
//
//go:embed ai_improve.schema.json
var AIImprove string

// Files maps schema file names to their contents.
var Files = map[string]string{
	"tone_detect.schema.json": ToneDetect,
	"ai_improve.schema.json":  AIImprove,
}
