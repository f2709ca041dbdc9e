package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/doffn/image-json-generator/pkg/builder"
	"github.com/doffn/image-json-generator/pkg/orchestrator"
	"github.com/doffn/image-json-generator/pkg/schema"
)

func main() {
	var (
		outputFlag   = flag.String("output", "", "write the JSON document to this file (stdout if empty)")
		generateFlag = flag.Bool("generate", false, "render the document to an image after building")
		analyzeFlag  = flag.Bool("analyze", false, "ask the text model to critique the document")
		keyFlag      = flag.String("key", "", "API key (falls back to GOOGLE_API_KEY)")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := builder.New().Run(ctx)
	if err != nil {
		if errors.Is(err, builder.ErrAborted) {
			os.Exit(1)
		}
		log.Fatalf("build: %v", err)
	}

	if *outputFlag != "" {
		if err := os.WriteFile(*outputFlag, []byte(result.JSON+"\n"), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Document written to %s\n", *outputFlag)
	}

	if !*generateFlag && !*analyzeFlag {
		return
	}

	key := *keyFlag
	if key == "" {
		key = os.Getenv("GOOGLE_API_KEY")
	}
	gen := orchestrator.New()

	if *analyzeFlag {
		analysis, err := gen.AnalyzePrompt(ctx, orchestrator.AnalyzeRequest{
			Prompt:     result.JSON,
			Credential: key,
		})
		if err != nil {
			log.Fatalf("analyze: %v", err)
		}
		fmt.Println(analysis)
	}

	if *generateFlag {
		uri, err := gen.GenerateImage(ctx, orchestrator.ImageRequest{
			Prompt:      result.JSON,
			AspectRatio: schema.AspectRatio(result.Category),
			Credential:  key,
		})
		if err != nil {
			log.Fatalf("generate: %v", err)
		}
		fmt.Println(uri)
	}
}
