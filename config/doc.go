// Package config loads LineFormatter settings from YAML, TOML or JSON.
//
// A configuration names the enabled options and the maximum line length:
//
//	# linelog.yaml
//	options: [TimestampShort, FileName, LineNumber, LogFlagShort, WordWrap]
//	line_length: 100
//
// options may also be a single "|"-joined string ("FileName|LineNumber").
// Keys present in the file override formatter.DefaultOptions and
// formatter.DefaultLineLength; missing keys keep them. A preset of
// "none" starts from the empty option set and no line length instead. The format is
// chosen from the file extension by Load, or passed explicitly to
// LoadBytes.
package config
