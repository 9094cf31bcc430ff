// Command classify-smoketest runs the heuristic engine against a piece of
// text and prints the verdict JSON, for poking at rule changes without
// standing up the API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/truthlens/truthlens/src/classifier"
)

var (
	textFlag      = flag.String("text", "", "Text to classify (default: read stdin)")
	fileFlag      = flag.String("file", "", "Read text from file instead")
	availableFlag = flag.Bool("available", true, "Report the contextual block as available")
	maxWordsFlag  = flag.Int("max-words", 0, "Reject inputs above this word count (0=off)")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	text := *textFlag
	switch {
	case text != "" && *fileFlag != "":
		log.Fatal("use -text or -file, not both")
	case *fileFlag != "":
		raw, err := os.ReadFile(*fileFlag)
		if err != nil {
			log.Fatalf("read %s: %v", *fileFlag, err)
		}
		text = string(raw)
	case text == "":
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
		text = string(raw)
	}

	engine := classifier.New(classifier.Options{
		ReportUnavailable: !*availableFlag,
		MaxWords:          *maxWordsFlag,
	})

	verdict, err := engine.Classify(text)
	if err != nil {
		log.Fatalf("classify: %v", err)
	}

	out, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Println(string(out))
}
