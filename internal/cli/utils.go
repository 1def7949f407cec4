// Package cli provides CLI output helpers for care-connect.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jerdaw/kingston-care-connect/internal/models"
	"github.com/jerdaw/kingston-care-connect/pkg/utils"
)

// SearchOutputFormat is the format for search result output.
type SearchOutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText SearchOutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON SearchOutputFormat = "json"
)

// WriteSearchResults writes search results to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format SearchOutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeSearchResultsText(w, response)
		return nil
	}
}

func writeSearchResultsText(w io.Writer, response *models.SearchResponse) {
	fmt.Fprintf(w, "\nFound %d results in %dms\n", response.Total, response.QueryTime)
	if response.Crisis {
		fmt.Fprintln(w, "\n⚠ Crisis language detected. If you are in immediate danger call 911.")
		fmt.Fprintln(w, "  Crisis services are listed first.")
	}
	fmt.Fprintln(w)
	for i, result := range response.Results {
		writeOneResult(w, i+1, result)
	}
}

func writeOneResult(w io.Writer, rank int, result *models.SearchResult) {
	svc := result.Service
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "Rank: %d | Score: %.1f | %s [%s, %s]\n",
		rank, result.Score, svc.Name.EN, svc.Category, svc.Verification)
	if svc.Name.FR != "" && svc.Name.FR != svc.Name.EN {
		fmt.Fprintf(w, "FR: %s\n", svc.Name.FR)
	}
	if len(result.MatchReasons) > 0 {
		fmt.Fprintf(w, "Why: %s\n", strings.Join(result.MatchReasons, "; "))
	}
	if svc.Description.EN != "" {
		fmt.Fprintf(w, "\n%s\n", utils.Truncate(svc.Description.EN, 200))
	}
	fmt.Fprintln(w)
}

// PrintSearchResults prints search results to stdout in text format.
func PrintSearchResults(response *models.SearchResponse) {
	_ = WriteSearchResults(os.Stdout, response, OutputText)
}
