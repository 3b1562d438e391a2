// Command chronolexctl is a smoke-test CLI for the chronolex extraction
// engine: it parses and resolves one or more lines of text against a
// chosen language and reference time, printing the resolved readings as
// JSON. It plays the role cmd/dictgen and cmd/smoketest play for the
// teacher's dictionary and tokenizer packages, adapted to this module's
// domain: a flag-driven way to run the pipeline end to end without
// writing a test.
//
// Usage:
//
//	go run ./cmd/chronolexctl -lang en "next monday at 5pm"
//	echo "tres horas" | go run ./cmd/chronolexctl -lang es
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/az-ai-labs/chronolex"
	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/value"
)

var languagesByFlag = map[string]value.Language{
	"en": value.English, "es": value.Spanish, "fr": value.French,
	"it": value.Italian, "pt": value.Portuguese, "zh": value.Chinese,
	"ko": value.Korean,
}

func main() {
	langFlag := flag.String("lang", "en", "language code: en, es, fr, it, pt, zh, ko")
	refFlag := flag.String("ref", "", "reference time in RFC3339 (default: now)")
	latentFlag := flag.Bool("latent", false, "include latent (bare-number) readings")
	flag.Parse()

	lang, ok := languagesByFlag[*langFlag]
	if !ok {
		log.Fatalf("chronolexctl: unknown -lang %q", *langFlag)
	}

	ref := moment.Now()
	if *refFlag != "" {
		t, err := time.Parse(time.RFC3339, *refFlag)
		if err != nil {
			log.Fatalf("chronolexctl: -ref: %v", err)
		}
		ref = moment.New(t)
	}
	refInterval := moment.StartingAt(ref, moment.Minute)

	rs, err := chronolex.BuildRuleset(lang)
	if err != nil {
		log.Fatalf("chronolexctl: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	run := func(text string) {
		results, err := chronolex.ParseAndResolve(context.Background(), text, rs, refInterval, *latentFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "chronolexctl: %q: %v\n", text, err)
			return
		}
		if err := enc.Encode(results); err != nil {
			log.Fatalf("chronolexctl: encode: %v", err)
		}
	}

	if args := flag.Args(); len(args) > 0 {
		run(strings.Join(args, " "))
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		run(line)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("chronolexctl: stdin: %v", err)
	}
}
