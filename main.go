// llm-literature-explorer is a CLI tool for exploring GitHub repositories at
// the intersection of large language models and literature.
//
// Usage:
//
//	llm-literature-explorer search --per-page 50 --analyze
//	llm-literature-explorer analyze --input llm_literature_repos.json
package main

import (
	"github.com/henrygabriels/llm-literature-explorer/cmd"
)

func main() {
	cmd.Execute()
}
