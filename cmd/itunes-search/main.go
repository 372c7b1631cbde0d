// Command itunes-search runs one gallery search without a window and prints
// the resulting grid.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ytget/itunes-gallery/internal/itunes"
	"github.com/ytget/itunes-gallery/internal/model"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// Exit codes
const (
	exitOK           = 0
	exitRequestError = 1
	exitInsufficient = 2
	exitUsage        = 64
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("itunes-search", flag.ContinueOnError)
	media := fs.String("media", string(model.CategoryMusic), "media type ("+categoryList()+")")
	baseURL := fs.String("base-url", itunes.DefaultBaseURL, "search endpoint")
	timeout := fs.Duration("timeout", itunes.RequestTimeout, "request timeout")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *showVersion {
		fmt.Printf("itunes-search v%s\n", version)
		return exitOK
	}

	category, err := model.ParseCategory(*media)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	query := model.SearchQuery{Term: strings.Join(fs.Args(), " "), Category: category}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := itunes.NewClient(*baseURL, nil)
	resp, err := client.Search(ctx, query)
	if err != nil {
		if insufficient, ok := itunes.AsInsufficientResults(err); ok {
			fmt.Fprintln(os.Stderr, renderInsufficient(insufficient))
			return exitInsufficient
		}
		log.Printf("Search failed: %v", err)
		return exitRequestError
	}

	urls := resp.Result.ArtworkURLs(nil)
	unique := itunes.UniqueArtwork(urls, model.GridSlots)

	grid := model.NewGrid()
	grid.Fill(unique)

	fmt.Println(renderSummary(resp.RequestURL, resp.Result.ResultCount, len(unique)))
	fmt.Println(renderGrid(grid))
	return exitOK
}

func categoryList() string {
	names := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
