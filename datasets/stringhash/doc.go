// Package stringhash provides sentence level text examples whose features are
// hashed whitespace tokens. Each example carries its label and its contrastive
// flag, so a list of sentences can be fed straight into the reweighter or
// converted into the JSONL feature format used by the command line tool.
package stringhash
