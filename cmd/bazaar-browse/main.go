// bazaar-browse is a feed client smoke cli: point it at a running API,
// give it a scope, and it pages through results the way a storefront would
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"bazaar/internal/feed"
	"bazaar/internal/platform/config"
	"bazaar/internal/platform/logger"
	"bazaar/internal/services/search/domain"
)

func main() {
	cfg := config.New().Prefix("CORE_BROWSE_")

	base := flag.String("api", cfg.MayString("API", "http://localhost:4000"), "bazaar API base url")
	category := flag.String("category", "", "category id")
	query := flag.String("q", "", "free text query")
	city := flag.String("city", "", "city filter")
	sort := flag.String("sort", "relevance", "sort key")
	promoted := flag.Bool("promoted", false, "promoted listings only")
	attrs := flag.String("attrs", "", "attribute filters as k=v,k=v")
	pages := flag.Int("pages", 3, "pages to fetch")
	size := flag.Int("size", 10, "page size")
	flag.Parse()

	_ = logger.Get()

	ctrl := feed.NewController(
		feed.NewHTTPTransport(*base, nil),
		feed.Options{
			PageSize: *size,
			Timeout:  cfg.MayDuration("FEED_TIMEOUT", 10*time.Second),
			Debounce: cfg.MayDuration("FEED_DEBOUNCE", 0),
		},
	)
	defer ctrl.Close()

	ctrl.SetScope(domain.Scope{
		Category:     *category,
		Query:        *query,
		City:         *city,
		Sort:         domain.SortKey(*sort),
		PromotedOnly: *promoted,
		Attrs:        parseAttrs(*attrs),
	})

	for p := 0; p < *pages; p++ {
		snap := waitSettled(ctrl)
		if snap.Err != nil {
			fmt.Fprintf(os.Stderr, "fetch failed: %v\n", snap.Err)
			os.Exit(1)
		}
		fmt.Printf("-- %d items of %d (has_more=%v)\n", len(snap.Items), snap.Total, snap.HasMore)
		for _, it := range snap.Items {
			tag := " "
			if it.Boosted {
				tag = "*"
			}
			fmt.Printf("%s %-36s  %8d  %.1f  %s\n", tag, it.ID, it.PriceCents, it.Rating, it.Title)
		}
		if !snap.HasMore {
			return
		}
		ctrl.LoadNextPage()
	}
}

// waitSettled polls until the controller leaves the fetching phase
func waitSettled(ctrl *feed.Controller) feed.Snapshot {
	for {
		snap := ctrl.Snapshot()
		if snap.Phase != feed.PhaseFetching && snap.Phase != feed.PhaseIdle {
			return snap
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func parseAttrs(s string) map[string]string {
	if s == "" {
		return nil
	}
	out := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}
